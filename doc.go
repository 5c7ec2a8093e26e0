// Package perudoc validates Peruvian identity and tax document numbers.
//
// It answers one question offline: is this string a well-formed instance of
// the declared document type? Supported types are DNI (national identity
// number), RUC (taxpayer registry number, with a modulo-11 check digit) and
// CE (foreign-resident card), plus the other SUNAT document types listed by
// DocumentTypes. Whether a number is actually registered with RENIEC or SUNAT
// is out of scope.
//
// # Usage
//
//	res := perudoc.Validate(perudoc.RUC, " 20100070970 ")
//	if !res.Valid() {
//	    switch res.Status {
//	    case perudoc.StatusInvalidChecksum:
//	        // ask the user to re-type the number
//	    }
//	    return res.Err()
//	}
//	store(res.Number.String()) // "20100070970"
//
// Every validation runs the same pipeline: the input is trimmed, rejected
// when empty or when it contains anything outside [0-9A-Za-z], upper-cased,
// then checked for length and charset; RUC additionally checks the
// taxpayer-type prefix and the check digit. The outcome is always a Result
// value with exactly one Status. Failures are data, not errors, so bulk
// callers can keep going; Result.Err converts to an error when needed.
//
// # Configuration
//
// Package-level functions use the built-in tables. A custom Validator can
// replace the RUC prefix allow-list and the CE length bounds, either with
// options or from the environment:
//
//	cfg, err := perudoc.LoadConfig() // PERUDOC_RUC_PREFIXES, PERUDOC_CE_MIN_LENGTH, ...
//	v, err := perudoc.NewFromConfig(cfg)
//
// A Validator never changes after construction and is safe for concurrent use.
//
// # Form validation
//
// Rule, ValidDNI, ValidRUC and ValidCE adapt document checks to the
// pkg/validator rule set:
//
//	err := validator.Apply(
//	    perudoc.ValidRUC("supplier_ruc", form.SupplierRUC),
//	    perudoc.ValidDNI("contact_dni", form.ContactDNI),
//	)
//
// # Command line
//
// cmd/perudoc exposes the same checks:
//
//	perudoc validate ruc 20100070970
//	cat dnis.txt | perudoc validate dni -o json
//	perudoc check-digit 2010007097
//	perudoc types --context plame
package perudoc
