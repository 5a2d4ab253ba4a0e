package models

// Ownership categories as coded in the scorecard dataset.
const (
	OwnershipPublic           = 1
	OwnershipPrivateNonprofit = 2
	OwnershipPrivateForProfit = 3
)

// Predominant degree levels as coded in the scorecard dataset.
const (
	DegreeCertificate = 1
	DegreeAssociate   = 2
	DegreeBachelor    = 3
	DegreeGraduate    = 4
)

// ValidOwnership reports whether v is a known ownership code.
func ValidOwnership(v int) bool {
	return v >= OwnershipPublic && v <= OwnershipPrivateForProfit
}

// ValidDegreeLevel reports whether v is a known predominant-degree code.
func ValidDegreeLevel(v int) bool {
	return v >= DegreeCertificate && v <= DegreeGraduate
}

// OwnershipLabel maps an ownership code to a display name.
func OwnershipLabel(v int) string {
	switch v {
	case OwnershipPublic:
		return "Public"
	case OwnershipPrivateNonprofit:
		return "Private Nonprofit"
	case OwnershipPrivateForProfit:
		return "Private For-Profit"
	default:
		return "Unknown"
	}
}
