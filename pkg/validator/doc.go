// Package validator provides a small declarative rule-building toolkit.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Apply, which aggregates every failure
// into a ValidationErrors slice that satisfies the error interface, so several
// field problems can be bubbled up in a single error return.
//
// The root perudoc package builds document-number rules on top of this
// package (perudoc.Rule, perudoc.ValidRUC, ...) and uses the generic rules
// here to check its own configuration.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredSlice("ruc_prefixes", prefixes),
//	    validator.DigitString("ruc_prefixes", "20", 2),
//	    perudoc.ValidRUC("supplier_ruc", form.SupplierRUC),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) or translate verrs.TranslationKeys(field)
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is; errors.Is(err, ErrValidationFailed)
// reports true for any aggregated failure, and ExtractValidationErrors walks
// wrapped and joined errors.
//
// All helpers are stateless and safe for concurrent use.
package validator
