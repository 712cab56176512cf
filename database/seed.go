package database

import (
	"log"
	"math/rand"
	"time"

	"github.com/puterizamrud/tuition_admin/models"
	"gorm.io/gorm"
)

var demoStudents = []models.Student{
	{Name: "Ahmad Faizal", RecordedName: "Ahmad Faizal bin Rahman", ContactNumber: "012-3456789", Email: "ahmad.faizal@example.com"},
	{Name: "Siti Aminah", RecordedName: "Siti Aminah binti Yusof", ContactNumber: "013-9876543", Email: "siti.aminah@example.com"},
	{Name: "Lim Wei Jie", ContactNumber: "016-2233445", Email: "weijie.lim@example.com"},
	{Name: "Nurul Izzah", RecordedName: "Nurul Izzah binti Hamid", ContactNumber: "017-5566778", Email: "nurul.izzah@example.com"},
	{Name: "Arvind Kumar", ContactNumber: "016-7890122", Email: "arvind.kumar@example.com"},
}

var demoMethods = []string{
	models.MethodCash,
	models.MethodBankTransfer,
	models.MethodOnline,
	models.MethodCheque,
}

// SeedDemoData loads a small set of students with randomized payments
// over the last twelve months. Only used for demo/dev environments; a
// non-empty students table short-circuits it.
func SeedDemoData(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Student{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for existing students: %v", err)
	}
	if count > 0 {
		log.Println("Demo data already present, skipping seed.")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range demoStudents {
		student := demoStudents[i]
		if err := db.Create(&student).Error; err != nil {
			log.Fatalf("🔥 Failed to seed student %s: %v", student.Name, err)
		}

		numPayments := rng.Intn(5) + 1
		for j := 0; j < numPayments; j++ {
			paymentDate := time.Now().
				AddDate(0, -rng.Intn(12), -rng.Intn(28))

			payment := models.Payment{
				StudentID:     student.ID,
				Amount:        float64(rng.Intn(151) + 50),
				PaymentMethod: demoMethods[rng.Intn(len(demoMethods))],
				PaymentDate:   paymentDate,
				Description:   "Monthly tuition fee",
			}
			if err := db.Create(&payment).Error; err != nil {
				log.Fatalf("🔥 Failed to seed payment for %s: %v", student.Name, err)
			}
		}
	}

	log.Println("✅ Demo data seeded successfully")
}
