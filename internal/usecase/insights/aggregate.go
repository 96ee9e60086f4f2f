// Package insights aggregates holdings into ranked, paginated reports:
// per asset across platforms, per platform across assets, and drilled down
// to a single asset or platform. Aggregation itself is pure; the Service
// wires it to repositories.
package insights

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
	"github.com/cryptofolio/cryptofolio-backend/internal/domain/money"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/valuation"
)

// Row is one ranked, balance-annotated line in an aggregated report.
// Percentage is this row's share of the report total; rows of one report
// sum to 100 within rounding tolerance.
type Row struct {
	SubjectID   uuid.UUID           `json:"subjectId"`
	SubjectName string              `json:"subjectName"`
	Quantity    decimal.Decimal     `json:"quantity"`
	Balances    domain.Balances     `json:"balances"`
	Percentage  float64             `json:"percentage"`
	Price       decimal.Decimal     `json:"price"`
	Changes     domain.PriceChanges `json:"changes"`
}

// PerCrypto aggregates holdings into one row per asset, summing quantities
// across platforms. Rows are returned unranked; callers sort and paginate.
func PerCrypto(holdings []*domain.Holding, cryptos map[uuid.UUID]*domain.Crypto) []Row {
	quantities := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID
	for _, h := range holdings {
		if _, seen := quantities[h.CryptoID]; !seen {
			order = append(order, h.CryptoID)
		}
		quantities[h.CryptoID] = quantities[h.CryptoID].Add(h.Quantity)
	}

	rows := make([]Row, 0, len(order))
	values := make([]decimal.Decimal, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		crypto := cryptos[id]
		if crypto == nil {
			continue
		}
		qty := quantities[id]
		value := qty.Mul(crypto.Prices.USD)
		total = total.Add(value)
		values = append(values, value)
		rows = append(rows, Row{
			SubjectID:   id,
			SubjectName: crypto.Name,
			Quantity:    money.StripZeros(qty),
			Balances:    valuation.Convert(qty, crypto.Prices),
			Price:       crypto.Prices.USD,
			Changes:     crypto.Changes,
		})
	}

	applyPercentages(rows, values, total)
	return rows
}

// PerPlatform aggregates holdings into one row per platform, summing the
// balances of every asset held there
func PerPlatform(
	holdings []*domain.Holding,
	cryptos map[uuid.UUID]*domain.Crypto,
	platforms map[uuid.UUID]*domain.Platform,
) []Row {
	type sums struct {
		usd, eur, btc decimal.Decimal
	}
	perPlatform := make(map[uuid.UUID]*sums)
	var order []uuid.UUID
	for _, h := range holdings {
		crypto := cryptos[h.CryptoID]
		if crypto == nil {
			continue
		}
		acc, seen := perPlatform[h.PlatformID]
		if !seen {
			acc = &sums{}
			perPlatform[h.PlatformID] = acc
			order = append(order, h.PlatformID)
		}
		acc.usd = acc.usd.Add(h.Quantity.Mul(crypto.Prices.USD))
		acc.eur = acc.eur.Add(h.Quantity.Mul(crypto.Prices.EUR))
		acc.btc = acc.btc.Add(h.Quantity.Mul(crypto.Prices.BTC))
	}

	rows := make([]Row, 0, len(order))
	values := make([]decimal.Decimal, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		platform := platforms[id]
		if platform == nil {
			continue
		}
		acc := perPlatform[id]
		total = total.Add(acc.usd)
		values = append(values, acc.usd)
		rows = append(rows, Row{
			SubjectID:   id,
			SubjectName: platform.Name,
			Balances: domain.Balances{
				USD: money.FiatString(acc.usd),
				EUR: money.FiatString(acc.eur),
				BTC: money.CryptoString(acc.btc),
			},
		})
	}

	applyPercentages(rows, values, total)
	return rows
}

// CryptoPerPlatform breaks one asset's holdings down into one row per
// platform. The holdings slice must already be filtered to that asset.
func CryptoPerPlatform(
	holdings []*domain.Holding,
	crypto *domain.Crypto,
	platforms map[uuid.UUID]*domain.Platform,
) []Row {
	rows := make([]Row, 0, len(holdings))
	values := make([]decimal.Decimal, 0, len(holdings))
	total := decimal.Zero
	for _, h := range holdings {
		platform := platforms[h.PlatformID]
		if platform == nil {
			continue
		}
		value := h.Quantity.Mul(crypto.Prices.USD)
		total = total.Add(value)
		values = append(values, value)
		rows = append(rows, Row{
			SubjectID:   h.PlatformID,
			SubjectName: platform.Name,
			Quantity:    money.StripZeros(h.Quantity),
			Balances:    valuation.Convert(h.Quantity, crypto.Prices),
			Price:       crypto.Prices.USD,
			Changes:     crypto.Changes,
		})
	}

	applyPercentages(rows, values, total)
	return rows
}

// PlatformPerCrypto breaks one platform's holdings down into one row per
// asset. The holdings slice must already be filtered to that platform.
func PlatformPerCrypto(holdings []*domain.Holding, cryptos map[uuid.UUID]*domain.Crypto) []Row {
	rows := make([]Row, 0, len(holdings))
	values := make([]decimal.Decimal, 0, len(holdings))
	total := decimal.Zero
	for _, h := range holdings {
		crypto := cryptos[h.CryptoID]
		if crypto == nil {
			continue
		}
		value := h.Quantity.Mul(crypto.Prices.USD)
		total = total.Add(value)
		values = append(values, value)
		rows = append(rows, Row{
			SubjectID:   h.CryptoID,
			SubjectName: crypto.Name,
			Quantity:    money.StripZeros(h.Quantity),
			Balances:    valuation.Convert(h.Quantity, crypto.Prices),
			Price:       crypto.Prices.USD,
			Changes:     crypto.Changes,
		})
	}

	applyPercentages(rows, values, total)
	return rows
}

// TotalBalances sums every holding into one Balances triple
func TotalBalances(holdings []*domain.Holding, cryptos map[uuid.UUID]*domain.Crypto) domain.Balances {
	usd, eur, btc := decimal.Zero, decimal.Zero, decimal.Zero
	any := false
	for _, h := range holdings {
		crypto := cryptos[h.CryptoID]
		if crypto == nil {
			continue
		}
		any = true
		usd = usd.Add(h.Quantity.Mul(crypto.Prices.USD))
		eur = eur.Add(h.Quantity.Mul(crypto.Prices.EUR))
		btc = btc.Add(h.Quantity.Mul(crypto.Prices.BTC))
	}
	if !any {
		return domain.EmptyBalances
	}
	return domain.Balances{
		USD: money.FiatString(usd),
		EUR: money.FiatString(eur),
		BTC: money.CryptoString(btc),
	}
}

// applyPercentages computes each row's share of the report total.
// The division runs on the unrounded decimal values, not on the rendered
// balances, so the shares of one report sum to 100 within tolerance.
func applyPercentages(rows []Row, values []decimal.Decimal, total decimal.Decimal) {
	for i := range rows {
		rows[i].Percentage = valuation.PercentOf(values[i], total)
	}
}
