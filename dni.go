package perudoc

const dniLength = 8

// validateDNI accepts any 8-digit number. The civil registry check digit is
// not published and is not emulated.
func validateDNI(raw string) Result {
	s, reason := normalize(raw)
	if reason != "" {
		return invalid(DNI, raw, StatusInvalidFormat, reason)
	}
	if len(s) != dniLength {
		return invalid(DNI, raw, StatusInvalidLength, lengthReason(len(s), dniLength, dniLength))
	}
	if !allDigits(s) {
		return invalid(DNI, raw, StatusInvalidCharset, "must contain only digits")
	}
	return valid(DNI, raw, s)
}
