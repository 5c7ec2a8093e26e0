package perudoc

// catalogEntry holds the SUNAT metadata for one document type. Empty system
// identifiers mean the filing system does not accept the type.
type catalogEntry struct {
	docType      DocumentType
	shortName    string
	plameID      string
	pleID        string
	afpID        string
	fv3800ID     string
	maxLength    int
	foreign      bool
	nonDomiciled bool
}

var catalog = []catalogEntry{
	{docType: Other, shortName: "OTR", pleID: "0", maxLength: 15},
	{docType: DNI, shortName: "DNI", plameID: "01", pleID: "1", afpID: "0", fv3800ID: "01", maxLength: dniLength},
	{docType: PNP, shortName: "PNP", plameID: "02", pleID: "0", afpID: "2", maxLength: 15},
	{docType: CE, shortName: "CEX", plameID: "04", pleID: "4", afpID: "1", fv3800ID: "04", maxLength: 12, foreign: true},
	{docType: RUC, shortName: "RUC", plameID: "06", pleID: "6", fv3800ID: "06", maxLength: rucLength},
	{docType: Passport, shortName: "PAS", plameID: "07", pleID: "7", afpID: "4", fv3800ID: "07", maxLength: 12, foreign: true},
	{docType: Refugee, shortName: "REF", plameID: "09", pleID: "0", afpID: "9", maxLength: 15, foreign: true},
	{docType: Diplomatic, shortName: "CDI", plameID: "22", pleID: "0", afpID: "7", maxLength: 15, foreign: true},
	{docType: PTP, shortName: "PTP", plameID: "23", pleID: "0", afpID: "6", maxLength: 15, foreign: true},
	{docType: ID, shortName: "ID", plameID: "24", pleID: "0", afpID: "8", fv3800ID: "02", maxLength: 15, foreign: true, nonDomiciled: true},
	{docType: IDPTP, shortName: "C. PTP", plameID: "26", pleID: "0", afpID: "10", maxLength: 15, foreign: true},
	{docType: TIN, shortName: "TIN", pleID: "0", fv3800ID: "01", maxLength: 15, foreign: true, nonDomiciled: true},
}

var catalogIndex = func() map[DocumentType]catalogEntry {
	idx := make(map[DocumentType]catalogEntry, len(catalog))
	for _, e := range catalog {
		idx[e.docType] = e
	}
	return idx
}()

// DocumentTypes returns every catalogued document type in catalog order.
func DocumentTypes() []DocumentType {
	types := make([]DocumentType, len(catalog))
	for i, e := range catalog {
		types[i] = e.docType
	}
	return types
}
