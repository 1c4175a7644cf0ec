package validation

import (
	"regexp"
	"strings"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/pkg/apperror"
)

// emailPattern is deliberately permissive: a dotted local part or quoted
// string, at a domain with at least one dot or a bracketed IPv4 literal.
var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}))$`,
)

// ValidEmail reports whether s has an acceptable email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.ToLower(s))
}

// Field keys reported by Validate. Handlers use them to highlight the
// offending inputs; item keys are suffixed with the item ID.
const (
	FieldProviderName     = "provider_name"
	FieldProviderDocument = "provider_document"
	FieldProviderEmail    = "provider_email"
	FieldBankInfo         = "bank_info"
	FieldCity             = "city"
	FieldItems            = "items"
)

// ItemDescriptionField returns the error key for an item's description.
func ItemDescriptionField(itemID string) string {
	return "items." + itemID + ".description"
}

// ItemValueField returns the error key for an item's value.
func ItemValueField(itemID string) string {
	return "items." + itemID + ".value"
}

// Validate checks a draft against the finalization rules. Every rule is
// evaluated independently so the caller can surface all offending fields
// at once; an empty result means the draft may be finalized.
func Validate(draft entity.Draft) []apperror.FieldError {
	var errs []apperror.FieldError

	add := func(field, message string) {
		errs = append(errs, apperror.FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(draft.Provider.Name) == "" {
		add(FieldProviderName, "Provider name is required")
	}
	if strings.TrimSpace(draft.Provider.Document) == "" {
		add(FieldProviderDocument, "Provider document (CPF/CNPJ) is required")
	}
	if strings.TrimSpace(draft.Provider.BankInfo) == "" {
		add(FieldBankInfo, "Banking/PIX information is required")
	}
	if strings.TrimSpace(draft.City) == "" {
		add(FieldCity, "City is required")
	}
	if email := strings.TrimSpace(draft.Provider.Email); email != "" && !ValidEmail(email) {
		add(FieldProviderEmail, "Email address is not valid")
	}

	if len(draft.Items) == 0 {
		add(FieldItems, "At least one item is required")
	}
	for _, item := range draft.Items {
		if strings.TrimSpace(item.Description) == "" {
			add(ItemDescriptionField(item.ID), "Item description is required")
		}
		if !item.Value.IsPositive() {
			add(ItemValueField(item.ID), "Item value must be greater than zero")
		}
	}

	return errs
}
