package domain

import (
	"regexp"
	"strings"
)

// PhoneRegex accepts Italian phone numbers: an optional +39 prefix, then
// either a mobile number (3 plus two digits and 6-7 more digits) or a
// landline (leading 0, 1-4 digits of area code, then 6-8 digits), with an
// optional space after the prefix group. Existing users' saved numbers must
// keep validating, so the accepted set must not change.
var PhoneRegex = regexp.MustCompile(`^(\+39\s?)?((3[0-9]{2}|32[0-9]|33[0-9]|34[0-9]|36[0-9]|37[0-9]|38[0-9]|39[0-9])\s?\d{6,7}|0[1-9]\d{1,3}\s?\d{6,8})$`)

// ValidPhone reports whether the trimmed input is an acceptable phone number.
func ValidPhone(phone string) bool {
	return PhoneRegex.MatchString(strings.TrimSpace(phone))
}

// PhonesMatch compares a supplied phone number against the stored credential.
// Both sides are trimmed; no other normalization is applied, the match is an
// exact string comparison.
func PhonesMatch(supplied, stored string) bool {
	return strings.TrimSpace(supplied) == strings.TrimSpace(stored)
}
