package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/puterizamrud/tuition_admin/invoices"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// Defaults match the centre's registered details; override per deployment
// via the COMPANY_* environment variables.
const (
	defaultCompanyName    = "Pusat Tuisyen Aspirasi Murni"
	defaultCompanyRegNo   = "202403330624 (003678967-P)"
	defaultCompanyEmail   = "puterizamrud@gmail.com"
	defaultCompanyAddress = "NO 56-1, JALAN SERI IMPIAN 8/1B,BANDAR SERI IMPIAN,86000 KLUANG,JOHOR"
	defaultCurrencyCode   = "RM"
)

// LoadCompanyInfo builds the company metadata injected into the export
// and reporting paths.
func LoadCompanyInfo() invoices.CompanyInfo {
	return invoices.CompanyInfo{
		Name:               envOr("COMPANY_NAME", defaultCompanyName),
		RegistrationNumber: envOr("COMPANY_REGISTRATION_NUMBER", defaultCompanyRegNo),
		Email:              envOr("COMPANY_EMAIL", defaultCompanyEmail),
		Address:            envOr("COMPANY_ADDRESS", defaultCompanyAddress),
		Currency:           envOr("COMPANY_CURRENCY", defaultCurrencyCode),
	}
}

func envOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
