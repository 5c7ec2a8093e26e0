package perudoc

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/perudoc/pkg/logger"
	"github.com/dmitrymomot/perudoc/pkg/validator"
)

// Validator applies a fixed set of document rules. Settings are copied at
// construction and never change, so a Validator is safe for concurrent use.
type Validator struct {
	rucPrefixes map[string]struct{}
	prefixList  []string
	ceMin       int
	ceMax       int
	log         *slog.Logger
}

// Option configures a Validator.
type Option func(*settings)

type settings struct {
	rucPrefixes []string
	ceMin       int
	ceMax       int
	log         *slog.Logger
}

// WithRUCPrefixes replaces the taxpayer-type prefix allow-list.
// Each prefix must be exactly two digits.
func WithRUCPrefixes(prefixes ...string) Option {
	return func(s *settings) {
		s.rucPrefixes = slices.Clone(prefixes)
	}
}

// WithCELength sets the inclusive CE length bounds.
func WithCELength(minLen, maxLen int) Option {
	return func(s *settings) {
		s.ceMin = minLen
		s.ceMax = maxLen
	}
}

// WithLogger enables debug logging of rejected documents. Numbers are masked.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a Validator. Without options it uses the built-in prefix list
// and CE bounds. Invalid settings yield an error wrapping ErrInvalidConfig
// and the underlying validator.ValidationErrors.
func New(opts ...Option) (*Validator, error) {
	s := settings{
		rucPrefixes: DefaultRUCPrefixes(),
		ceMin:       DefaultCEMinLength,
		ceMax:       DefaultCEMaxLength,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	v := &Validator{
		rucPrefixes: make(map[string]struct{}, len(s.rucPrefixes)),
		ceMin:       s.ceMin,
		ceMax:       s.ceMax,
		log:         s.log,
	}
	for _, p := range s.rucPrefixes {
		if _, dup := v.rucPrefixes[p]; dup {
			continue
		}
		v.rucPrefixes[p] = struct{}{}
		v.prefixList = append(v.prefixList, p)
	}
	slices.Sort(v.prefixList)
	return v, nil
}

// MustNew is like New but panics on invalid settings.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("perudoc: %v", err))
	}
	return v
}

func (s settings) validate() error {
	rules := []validator.Rule{
		validator.RequiredSlice("ruc_prefixes", s.rucPrefixes),
		validator.MinNum("ce_min_length", s.ceMin, 1),
		validator.MinNum("ce_max_length", s.ceMax, s.ceMin),
		validator.MaxNum("ce_max_length", s.ceMax, maxDocumentLength),
	}
	for _, p := range s.rucPrefixes {
		rules = append(rules, validator.DigitString("ruc_prefixes", p, rucPrefixLen))
	}
	return validator.Apply(rules...)
}

// Longest number any catalogued document type allows.
const maxDocumentLength = 15

// RUCPrefixes returns the configured prefix allow-list, sorted.
func (v *Validator) RUCPrefixes() []string {
	return slices.Clone(v.prefixList)
}

// CELength returns the inclusive CE length bounds.
func (v *Validator) CELength() (minLen, maxLen int) {
	return v.ceMin, v.ceMax
}

// Validate checks raw against the rules of document type t.
// Unknown types yield StatusInvalidFormat with a cause of ErrUnsupportedType.
func (v *Validator) Validate(t DocumentType, raw string) Result {
	var res Result
	switch t {
	case DNI:
		res = validateDNI(raw)
	case RUC:
		res = v.validateRUC(raw)
	case CE:
		res = validateAlnum(CE, raw, v.ceMin, v.ceMax)
	default:
		e, ok := catalogIndex[t]
		if !ok {
			res = invalid(t, raw, StatusInvalidFormat, ErrUnsupportedType.Error())
			res.cause = ErrUnsupportedType
			break
		}
		res = validateAlnum(t, raw, 1, e.maxLength)
	}
	v.logRejection(res)
	return res
}

func (v *Validator) ValidateDNI(raw string) Result { return v.Validate(DNI, raw) }
func (v *Validator) ValidateRUC(raw string) Result { return v.Validate(RUC, raw) }
func (v *Validator) ValidateCE(raw string) Result  { return v.Validate(CE, raw) }

// Input pairs a raw document number with its declared type.
type Input struct {
	Type   DocumentType
	Number string
}

// ValidateAll validates every input independently and returns results in input order.
func (v *Validator) ValidateAll(inputs ...Input) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		results[i] = v.Validate(in.Type, in.Number)
	}
	return results
}

func (v *Validator) logRejection(res Result) {
	if v.log == nil || res.Valid() {
		return
	}
	v.log.Debug("document rejected",
		logger.DocumentType(res.Type.String()),
		logger.DocumentNumber(res.Input),
		logger.Status(res.Status.String()),
		logger.Reason(res.Reason),
	)
}

var defaultValidator = MustNew()

// Validate checks raw against the built-in rules of document type t.
func Validate(t DocumentType, raw string) Result {
	return defaultValidator.Validate(t, raw)
}

// ValidateDNI checks an 8-digit national identity number.
func ValidateDNI(raw string) Result { return defaultValidator.ValidateDNI(raw) }

// ValidateRUC checks an 11-digit taxpayer number: prefix allow-list and modulo-11 check digit.
func ValidateRUC(raw string) Result { return defaultValidator.ValidateRUC(raw) }

// ValidateCE checks a foreign-resident card number: 9 to 12 letters or digits.
func ValidateCE(raw string) Result { return defaultValidator.ValidateCE(raw) }
