package bidseries

import "bidchart/internal/models"

const fallbackPrefixLen = 4

// DisplayName picks the vendor company name, then the participant name, then
// a label built from the first characters of the id.
func DisplayName(p models.Participant) string {
	if p.Vendor != nil && p.Vendor.CompanyName != "" {
		return p.Vendor.CompanyName
	}
	if p.Name != "" {
		return p.Name
	}
	id := []rune(p.ParticipantID)
	if len(id) > fallbackPrefixLen {
		id = id[:fallbackPrefixLen]
	}
	return "Participant " + string(id)
}
