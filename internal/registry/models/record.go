package models

// Free-text field caps, in bytes.
const (
	MaxBioLength     = 200
	MaxWebsiteLength = 100
)

// NameRecord is the ownership record stored under a registered name.
// Records are permanent: registration creates one, transfer replaces the
// owner, edit replaces bio and website. Nothing deletes one, so a record
// exists for a key exactly when that name was successfully registered.
type NameRecord struct {
	Owner   Identity `json:"owner"`
	Bio     string   `json:"bio"`
	Website string   `json:"website"`
}

// Clone returns an independent copy of the record.
func (r *NameRecord) Clone() *NameRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// ValidateBio checks the bio byte-length cap.
func ValidateBio(bio string) error {
	if len(bio) > MaxBioLength {
		return &BioTooLongError{Length: len(bio), Max: MaxBioLength}
	}
	return nil
}

// ValidateWebsite checks the website byte-length cap.
func ValidateWebsite(website string) error {
	if len(website) > MaxWebsiteLength {
		return &WebsiteTooLongError{Length: len(website), Max: MaxWebsiteLength}
	}
	return nil
}
