package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	domainrepo "github.com/rodamoinho/recibos-api/internal/domain/repository"
	"github.com/rodamoinho/recibos-api/internal/infrastructure/storage"
)

func testReceipt(number string) entity.Receipt {
	payer, _ := entity.PayerByIndex(0)
	items := []entity.LineItem{
		{ID: "1", Description: "Produção de evento", Value: decimal.NewFromFloat(1000)},
	}
	totals := entity.ComputeTotals(items, decimal.NewFromInt(200), decimal.NewFromInt(10))
	return entity.Receipt{
		Number:   number,
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:     entity.ServiceReceipt,
		City:     entity.DefaultCity,
		Payer:    payer,
		Provider: entity.Provider{Name: "Maria da Silva", Document: "123.456.789-01", BankInfo: "PIX"},
		Items:    items,
		Discount: decimal.NewFromInt(200),
		TaxRate:  decimal.NewFromInt(10),
		Totals:   totals,
	}
}

func TestSequenceStartsAtOne(t *testing.T) {
	seq := NewSequenceRepository(storage.NewMemoryKV())
	ctx := context.Background()

	next, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0001", next)

	// Peeking does not advance the counter.
	next, err = seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0001", next)
}

func TestSequenceAdvancesOnlyOnCommit(t *testing.T) {
	seq := NewSequenceRepository(storage.NewMemoryKV())
	ctx := context.Background()

	for i, want := range []string{"0001", "0002", "0003"} {
		next, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, next, "finalize %d", i+1)
		require.NoError(t, seq.Commit(ctx, next))
	}
}

func TestSequenceSurvivesRestart(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	seq := NewSequenceRepository(kv)
	n, err := seq.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, seq.Commit(ctx, n))

	// A fresh repository over the same store continues the sequence.
	seq = NewSequenceRepository(kv)
	next, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0002", next)
}

func TestHistoryRoundTrip(t *testing.T) {
	hist := NewHistoryRepository(storage.NewMemoryKV())
	ctx := context.Background()

	first := testReceipt("0001")
	second := testReceipt("0002")
	require.NoError(t, hist.Append(ctx, first))
	require.NoError(t, hist.Append(ctx, second))

	list, err := hist.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Most-recent-first.
	assert.Equal(t, "0002", list[0].Number)
	assert.Equal(t, "0001", list[1].Number)

	// Every field reproduces exactly as persisted, including totals.
	got := list[1]
	assert.Equal(t, first.Provider, got.Provider)
	assert.Equal(t, first.Payer, got.Payer)
	assert.Equal(t, first.City, got.City)
	assert.True(t, first.Date.Equal(got.Date))
	require.Len(t, got.Items, 1)
	assert.Equal(t, first.Items[0].Description, got.Items[0].Description)
	assert.True(t, first.Items[0].Value.Equal(got.Items[0].Value))
	assert.True(t, first.Totals.Gross.Equal(got.Totals.Gross))
	assert.True(t, first.Totals.TaxValue.Equal(got.Totals.TaxValue))
	assert.True(t, first.Totals.Net.Equal(got.Totals.Net))
}

func TestHistoryRemove(t *testing.T) {
	hist := NewHistoryRepository(storage.NewMemoryKV())
	ctx := context.Background()

	for _, n := range []string{"0001", "0002", "0003"} {
		require.NoError(t, hist.Append(ctx, testReceipt(n)))
	}

	require.NoError(t, hist.Remove(ctx, "0002"))

	list, err := hist.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "0003", list[0].Number)
	assert.Equal(t, "0001", list[1].Number)

	err = hist.Remove(ctx, "0002")
	assert.ErrorIs(t, err, domainrepo.ErrKeyNotFound)
}

func TestProfilePersistsAcrossRepositories(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	provider := entity.Provider{
		Name:      "Maria da Silva",
		Document:  "123.456.789-01",
		BankInfo:  "PIX: maria@email.com",
		Signature: "iVBORw0KGgo=",
	}
	require.NoError(t, NewProfileRepository(kv).Save(ctx, provider))

	got, err := NewProfileRepository(kv).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, provider, got)
}

func TestProfileLogoLifecycle(t *testing.T) {
	repo := NewProfileRepository(storage.NewMemoryKV())
	ctx := context.Background()

	logo, err := repo.GetLogo(ctx)
	require.NoError(t, err)
	assert.Nil(t, logo)

	require.NoError(t, repo.SaveLogo(ctx, []byte{0x89, 0x50, 0x4e, 0x47}))
	logo, err = repo.GetLogo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, logo)

	require.NoError(t, repo.RemoveLogo(ctx))
	logo, err = repo.GetLogo(ctx)
	require.NoError(t, err)
	assert.Nil(t, logo)
}
