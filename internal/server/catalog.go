package server

// CatalogRef is one reference descriptor internships are reconciled
// against.
type CatalogRef struct {
	RefID          string
	Title          string
	DescriptorText string
	MinHours       int
}

// catalogRefs is the fixed demo catalog of credit descriptors.
var catalogRefs = []CatalogRef{
	{
		RefID:          "UGC-INT-CLOUD-01",
		Title:          "Cloud Infra Deployment",
		DescriptorText: "deploy cloud infrastructure virtual machines networking storage",
		MinHours:       120,
	},
	{
		RefID:          "UGC-INT-DEVOPS-02",
		Title:          "CI/CD & Monitoring",
		DescriptorText: "continuous integration delivery pipelines monitoring alerting",
		MinHours:       120,
	},
	{
		RefID:          "UGC-INT-GENERIC-05",
		Title:          "Workplace Exposure",
		DescriptorText: "workplace exposure professional environment project work",
		MinHours:       60,
	},
}

// creditHoursPerUnit converts internship hours into credit units.
const creditHoursPerUnit = 120

// maxCreditValue caps the credit units a single internship can earn.
const maxCreditValue = 6

// Composite decision thresholds for reconciliation.
const (
	equivalentThreshold = 0.72
	partialThreshold    = 0.55
)
