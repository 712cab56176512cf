package invoices

import "encoding/xml"

type invoiceList struct {
	Invoice []Line
}

type einvoicesDocument struct {
	XMLName     xml.Name    `xml:"EInvoices"`
	CompanyInfo CompanyInfo `xml:"CompanyInfo"`
	Invoices    invoiceList `xml:"Invoices"`
}

// MarshalXMLDocument serializes the export as tagged markup. Going
// through encoding/xml means user-entered names and descriptions are
// escaped at the boundary.
func MarshalXMLDocument(doc Document) ([]byte, error) {
	out, err := xml.MarshalIndent(einvoicesDocument{
		CompanyInfo: doc.CompanyInfo,
		Invoices:    invoiceList{Invoice: doc.Invoices},
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
