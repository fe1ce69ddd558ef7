package console

import "driverStamps/business/identity"

// DerivePhone is the phone the console tracks for a given search text. Exactly
// ten digits in the query become the phone; anything else leaves no phone.
func DerivePhone(query string) string {
	digits := identity.NormalizePhone(query)
	if len(digits) == identity.PhoneDigits {
		return digits
	}

	return ""
}
