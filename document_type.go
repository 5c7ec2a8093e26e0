package perudoc

import (
	"fmt"
	"strings"
)

// DocumentType identifies a Peruvian identity document (DOI) kind.
type DocumentType string

const (
	Other      DocumentType = "OTHER"
	DNI        DocumentType = "DNI"
	PNP        DocumentType = "PNP"
	CE         DocumentType = "CE"
	RUC        DocumentType = "RUC"
	Passport   DocumentType = "PASSPORT"
	Refugee    DocumentType = "REFUGEE"
	Diplomatic DocumentType = "DIPLOMATIC"
	PTP        DocumentType = "PTP"
	ID         DocumentType = "ID"
	IDPTP      DocumentType = "ID_PTP"
	TIN        DocumentType = "TIN"
)

// UsageContext names a SUNAT filing system that assigns its own code to each document type.
type UsageContext string

const (
	PLE    UsageContext = "PLE"
	PLAME  UsageContext = "PLAME"
	AFPNet UsageContext = "AFPNET"
	FV3800 UsageContext = "FV3800"
)

// UsageContexts lists every known filing system.
var UsageContexts = []UsageContext{PLE, PLAME, AFPNet, FV3800}

func (t DocumentType) String() string {
	return string(t)
}

// Known reports whether the type is present in the catalog.
func (t DocumentType) Known() bool {
	_, ok := catalogIndex[t]
	return ok
}

// ShortName returns the abbreviation used in internal mappings ("CEX" for CE).
func (t DocumentType) ShortName() string {
	return catalogIndex[t].shortName
}

// Foreign reports whether the document is issued to non-Peruvian nationals.
func (t DocumentType) Foreign() bool {
	return catalogIndex[t].foreign
}

// AcceptedForNonDomiciled reports whether the document identifies non-domiciled taxpayers.
func (t DocumentType) AcceptedForNonDomiciled() bool {
	return catalogIndex[t].nonDomiciled
}

// Code returns the identifier the given filing system uses for this type,
// or an empty string when the system does not accept it.
func (t DocumentType) Code(ctx UsageContext) string {
	e, ok := catalogIndex[t]
	if !ok {
		return ""
	}
	switch ctx {
	case PLE:
		return e.pleID
	case PLAME:
		return e.plameID
	case AFPNet:
		return e.afpID
	case FV3800:
		return e.fv3800ID
	}
	return ""
}

// SuitableFor reports whether the filing system accepts this document type.
func (t DocumentType) SuitableFor(ctx UsageContext) bool {
	return t.Code(ctx) != ""
}

// SuitableTypes returns the document types accepted by ctx in catalog order.
func SuitableTypes(ctx UsageContext) []DocumentType {
	var types []DocumentType
	for _, e := range catalog {
		if e.docType.SuitableFor(ctx) {
			types = append(types, e.docType)
		}
	}
	return types
}

// TypeByCode resolves a filing-system code back to a document type. Several
// types share PLE code "0"; the first one in catalog order wins.
func TypeByCode(ctx UsageContext, code string) (DocumentType, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	for _, e := range catalog {
		if e.docType.Code(ctx) == code {
			return e.docType, true
		}
	}
	return "", false
}

// ParseDocumentType maps an explicit type label, either the type name or its
// short name, to a DocumentType. Matching is case-insensitive.
func ParseDocumentType(label string) (DocumentType, error) {
	l := strings.ToUpper(strings.TrimSpace(label))
	for _, e := range catalog {
		if l == string(e.docType) || l == e.shortName {
			return e.docType, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedType, label)
}
