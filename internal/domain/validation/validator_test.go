package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
)

func validDraft() entity.Draft {
	draft := entity.NewDraft(time.Now())
	draft.Provider = entity.Provider{
		Name:     "Maria da Silva",
		Document: "123.456.789-01",
		BankInfo: "PIX: maria@email.com",
	}
	draft.Items = []entity.LineItem{
		{ID: "1", Description: "Produção de evento", Value: decimal.NewFromInt(1000)},
	}
	return draft
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	assert.Empty(t, Validate(validDraft()))
}

func TestValidateReportsAllFailuresAtOnce(t *testing.T) {
	draft := validDraft()
	draft.Provider.Name = "   "
	draft.Items[0].Value = decimal.Zero

	errs := Validate(draft)
	keys := make([]string, len(errs))
	for i, e := range errs {
		keys[i] = e.Field
	}

	assert.Contains(t, keys, FieldProviderName)
	assert.Contains(t, keys, ItemValueField("1"))
	assert.Len(t, errs, 2)
}

func TestValidateRequiredFields(t *testing.T) {
	draft := validDraft()
	draft.Provider.Document = ""
	draft.Provider.BankInfo = ""
	draft.City = ""

	errs := Validate(draft)
	keys := make([]string, len(errs))
	for i, e := range errs {
		keys[i] = e.Field
	}

	assert.ElementsMatch(t, []string{FieldProviderDocument, FieldBankInfo, FieldCity}, keys)
}

func TestValidateEmailOnlyWhenPresent(t *testing.T) {
	draft := validDraft()
	draft.Provider.Email = ""
	assert.Empty(t, Validate(draft))

	draft.Provider.Email = "not-an-email"
	errs := Validate(draft)
	assert.Len(t, errs, 1)
	assert.Equal(t, FieldProviderEmail, errs[0].Field)
}

func TestValidateRequiresAtLeastOneItem(t *testing.T) {
	draft := validDraft()
	draft.Items = nil

	errs := Validate(draft)
	assert.Len(t, errs, 1)
	assert.Equal(t, FieldItems, errs[0].Field)
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"maria@email.com",
		"maria.silva@sub.domain.com.br",
		"MARIA@EMAIL.COM",
		"maria@[192.168.0.1]",
		`"maria silva"@email.com`,
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), "expected %q to be valid", e)
	}

	invalid := []string{
		"maria",
		"maria@",
		"@email.com",
		"maria@email",
		"maria silva@email.com",
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "expected %q to be invalid", e)
	}
}
