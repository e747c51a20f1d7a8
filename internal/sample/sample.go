// Package sample builds the fixed demonstration record graph: one merchant's
// invoice traced through its fee rates, fee summaries, and settlements, and
// out to the downstream entities the settlements distribute to.
package sample

import (
	"github.com/shopspring/decimal"

	"github.com/feewise/billgraph/internal/graph"
	"github.com/feewise/billgraph/internal/models"
)

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal { return ptr(dec(s)) }

// Records returns the fixed set of row snapshots the sample graph is built
// from, keyed by the node id each will be registered under.
func Records() map[string]models.Schema {
	merchant := models.BillingEntity{
		ID:                1195,
		UUID:              "JW8H2B9BT6B11R2HHXY3HYQCN6",
		EntityUUID:        "062X8PVY3XWB1",
		EntityType:        models.EntityTypeMerchant,
		Name:              ptr("MerchantMcMerchantface"),
		CreatedTimestamp:  models.MustTimestamp("2025-02-26T17:06:39.670150"),
		ModifiedTimestamp: models.MustTimestamp("2025-02-26T17:06:39.670150"),
	}
	clover := models.BillingEntity{
		ID:                1,
		UUID:              "M4JT4XQCPWPMW7WGA4G1Z5NGED",
		EntityUUID:        "S7VJZXH057ZHC",
		EntityType:        models.EntityTypeReseller,
		Name:              ptr("Clover"),
		CreatedTimestamp:  models.MustTimestamp("2025-01-30T16:37:56.379038"),
		ModifiedTimestamp: models.MustTimestamp("2025-01-30T16:37:56.379038"),
	}
	usSupport := models.BillingEntity{
		ID:                3,
		UUID:              "8E7KTPHJRBHP16EQB5RS2P8D0Q",
		EntityUUID:        "V9Z9C6EX72SY2",
		EntityType:        models.EntityTypeReseller,
		Name:              ptr("US Customer Support"),
		CreatedTimestamp:  models.MustTimestamp("2025-01-30T16:37:56.379038"),
		ModifiedTimestamp: models.MustTimestamp("2025-01-30T16:37:56.379038"),
	}

	invoice := models.InvoiceInfo{
		ID:                6200,
		UUID:              "NFX80F4EH68BEW08384RX7RBMC",
		BillingEntityUUID: "JW8H2B9BT6B11R2HHXY3HYQCN6",
		EntityUUID:        "062X8PVY3XWB1",
		AlternateID:       ptr("209225173886"),
		BillingDate:       models.MustDate("2025-06-01"),
		InvoiceNum:        "202506/000006200",
		Currency:          "USD",
		TotalAmount:       dec("258.83"),
		DocumentUUID:      ptr("RED0GSNS27W2XG1FQ25VVFEEXH"),
		RequestUUID:       ptr("CW6456TXW4N934RVY27G5E5CDB"),
		CreatedTimestamp:  models.MustTimestamp("2025-06-02T15:06:43.378289"),
	}

	feeRates := []models.FeeRate{
		{
			ID:                267888,
			UUID:              "J65DRB7XHQQ1RTYJSBSTQQBW7K",
			BillingEntityUUID: "M4JT4XQCPWPMW7WGA4G1Z5NGED",
			FeeCategory:       "APP_SUB_3P_RETAIL",
			FeeCode:           "MW63DAWPN6JGY.S",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2017-02-15"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("9.99"),
			CreatedTimestamp:  models.MustTimestamp("2025-02-25T19:36:38.626269"),
			ModifiedTimestamp: models.MustTimestamp("2025-02-25T19:36:38.626269"),
		},
		{
			ID:                272274,
			UUID:              "82G1K56V4V17DXXQHGMR3C328W",
			BillingEntityUUID: "M4JT4XQCPWPMW7WGA4G1Z5NGED",
			FeeCategory:       "APP_SUB_3P_RETAIL",
			FeeCode:           "E2ATEB4GHYFCE.S",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2016-02-09"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("59.99"),
			CreatedTimestamp:  models.MustTimestamp("2025-02-25T19:41:08.122154"),
			ModifiedTimestamp: models.MustTimestamp("2025-02-25T19:41:08.122154"),
		},
		{
			ID:                244655,
			UUID:              "VWH1Q0V9SS6FNRD48BYZB9YA9A",
			BillingEntityUUID: "M4JT4XQCPWPMW7WGA4G1Z5NGED",
			FeeCategory:       "APP_SUB_3P_RETAIL",
			FeeCode:           "BCMPKE5Z10A38.S",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2017-02-17"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("99"),
			CreatedTimestamp:  models.MustTimestamp("2025-02-25T19:05:31.108052"),
			ModifiedTimestamp: models.MustTimestamp("2025-02-25T19:05:31.108052"),
		},
		{
			ID:                173,
			UUID:              "2G767D60KKG18208768S4C1HM8",
			BillingEntityUUID: "8E7KTPHJRBHP16EQB5RS2P8D0Q",
			FeeCategory:       "DEVICE_RETAIL",
			FeeCode:           "RegisterPDVT",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2025-01-01"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("19.95"),
			CreatedTimestamp:  models.MustTimestamp("2025-01-30T16:38:02.379723"),
			ModifiedTimestamp: models.MustTimestamp("2025-01-30T16:38:33.706835"),
			AuditID:           ptr("STEKRDE0YS244"),
		},
		{
			ID:                193,
			UUID:              "KG9ABT30FRKVX39VRV82CBDKJF",
			BillingEntityUUID: "8E7KTPHJRBHP16EQB5RS2P8D0Q",
			FeeCategory:       "DEVICE_RETAIL_MOD",
			FeeCode:           "RegisterPDVTIncl1st",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2025-01-01"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("-19.95"),
			CreatedTimestamp:  models.MustTimestamp("2025-01-30T16:38:02.480183"),
			ModifiedTimestamp: models.MustTimestamp("2025-01-30T16:38:33.706835"),
			AuditID:           ptr("STEKRDE0YS244"),
		},
		{
			ID:                169,
			UUID:              "DF6FE39FRQHVXJKVVN9WTDSGWX",
			BillingEntityUUID: "8E7KTPHJRBHP16EQB5RS2P8D0Q",
			FeeCategory:       "PLAN_RETAIL",
			FeeCode:           "RegisterPDVT",
			Currency:          "USD",
			EffectiveDate:     models.MustDate("2025-01-01"),
			ApplyType:         models.ApplyTypePerItem,
			PerItemAmount:     decPtr("49.95"),
			CreatedTimestamp:  models.MustTimestamp("2025-01-30T16:38:02.359401"),
			ModifiedTimestamp: models.MustTimestamp("2025-01-30T16:38:33.706835"),
			AuditID:           ptr("STEKRDE0YS244"),
		},
	}

	feeSummaries := []models.FeeSummary{
		{
			ID:                       74347,
			UUID:                     "K576N1W35XYEVW7VH1JVDY1XRT",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "APP_SUB_3P_RETAIL",
			FeeCode:                  "MW63DAWPN6JGY.S",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("1"),
			AbsPeriodUnits:           dec("1"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("9.99"),
			FeeRateUUID:              "J65DRB7XHQQ1RTYJSBSTQQBW7K",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("DMW4K1XGB16DAEQ2ZRSJACE1WS"),
			CreditLedgerAccountUUID:  ptr("KBERX62EJMWD8KEVFZRX0H875Z"),
			DebitLedgerAccountUUID:   ptr("5XNJ7KBDBGNKVRFZYMCZJ6G5E7"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.960436"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
		{
			ID:                       74345,
			UUID:                     "4FM5SS3WW7WT7GZZWFMSS9YQP6",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "APP_SUB_3P_RETAIL",
			FeeCode:                  "E2ATEB4GHYFCE.S",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("1"),
			AbsPeriodUnits:           dec("1"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("59.99"),
			FeeRateUUID:              "82G1K56V4V17DXXQHGMR3C328W",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("2V1BQ7YMC6PJXESE3YA57EW31Q"),
			CreditLedgerAccountUUID:  ptr("15WVBBCPN56BD7EGE5STR2R1EW"),
			DebitLedgerAccountUUID:   ptr("2MV95DFMWYJ1KZZBGS3HX8F9XN"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.949495"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
		{
			ID:                       74341,
			UUID:                     "MH2Q9759T1FKMP887PMRQFMV9R",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "APP_SUB_3P_RETAIL",
			FeeCode:                  "BCMPKE5Z10A38.S",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("1"),
			AbsPeriodUnits:           dec("1"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("99"),
			FeeRateUUID:              "VWH1Q0V9SS6FNRD48BYZB9YA9A",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("AHZXC23GACNTQNYCX9S14PG914"),
			CreditLedgerAccountUUID:  ptr("7FQZ30FPEWWM5MV65RY0ZB5D3G"),
			DebitLedgerAccountUUID:   ptr("9X9TF60JDBMZQ7A0FHHK7E14W3"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.922833"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
		{
			ID:                       74349,
			UUID:                     "VC74T4AJ9R5X148DSRS95R5PF3",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "DEVICE_RETAIL",
			FeeCode:                  "RegisterPDVT",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("3"),
			AbsPeriodUnits:           dec("3"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("59.85"),
			FeeRateUUID:              "2G767D60KKG18208768S4C1HM8",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("JZ4Q82HKC14JDAE8YYZZYWKB0X"),
			CreditLedgerAccountUUID:  ptr("HSMJRPH5WVCCV4WKW04CX6ZJG5"),
			DebitLedgerAccountUUID:   ptr("62PXBE9JK6QXA65WHY3G5G0K01"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.973521"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
		{
			ID:                       74350,
			UUID:                     "9VEDCKTVN2PTAYAQ8TCQV3ZNGZ",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "DEVICE_RETAIL_MOD",
			FeeCode:                  "RegisterPDVTIncl1st",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("1"),
			AbsPeriodUnits:           dec("1"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("-19.95"),
			FeeRateUUID:              "KG9ABT30FRKVX39VRV82CBDKJF",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("H1HH56GWY4VWTDP6VQ3977EKNG"),
			CreditLedgerAccountUUID:  ptr("2SNQPEXR2T0PX6Y36NWQSRZNRJ"),
			DebitLedgerAccountUUID:   ptr("62PXBE9JK6QXA65WHY3G5G0K01"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.979936"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
		{
			ID:                       74351,
			UUID:                     "FD7GD3YK93ZZS4C1DA6C7W9AER",
			BillingEntityUUID:        "JW8H2B9BT6B11R2HHXY3HYQCN6",
			BillingDate:              models.MustDate("2025-06-01"),
			FeeCategory:              "PLAN_RETAIL",
			FeeCode:                  "RegisterPDVT",
			Currency:                 "USD",
			TotalPeriodUnits:         dec("1"),
			AbsPeriodUnits:           dec("1"),
			TotalBasisAmount:         dec("0"),
			AbsBasisAmount:           dec("0"),
			TotalFeeAmount:           dec("49.95"),
			FeeRateUUID:              "DF6FE39FRQHVXJKVVN9WTDSGWX",
			RequestUUID:              "KNFZA2P2E2KMGKMATSY1RSD8TY",
			InvoiceInfoUUID:          ptr("NFX80F4EH68BEW08384RX7RBMC"),
			FeeCodeLedgerAccountUUID: ptr("GCCQKS6H40NBQKS6KC4F31WAZY"),
			CreditLedgerAccountUUID:  ptr("HSMJRPH5WVCCV4WKW04CX6ZJG5"),
			DebitLedgerAccountUUID:   ptr("62PXBE9JK6QXA65WHY3G5G0K01"),
			CreatedTimestamp:         models.MustTimestamp("2025-06-02T14:56:15.987500"),
			ModifiedTimestamp:        models.MustTimestamp("2025-06-02T15:06:43.387646"),
		},
	}

	settlements := []models.Settlement{
		{
			ID:                     6256,
			UUID:                   "NH8V7V2V0CQ0BWCTGVN6QBV753",
			SettlementDate:         models.MustDate("2025-06-01"),
			BillingEntityUUID:      "JW8H2B9BT6B11R2HHXY3HYQCN6",
			EntityUUID:             "062X8PVY3XWB1",
			AlternateID:            ptr("209225173886"),
			PayableReceivable:      models.Receivable,
			Currency:               "USD",
			TotalAmount:            dec("9.99"),
			FeeAmount:              dec("9.99"),
			Tax1Amount:             dec("0"),
			Tax2Amount:             dec("0"),
			Tax3Amount:             dec("0"),
			Tax4Amount:             dec("0"),
			LookupLedgerAccountKey: "Incur.App.E8HJHPCT8AR08",
			ItemCode:               ptr("E8HJHPCT8AR08"),
			LastInvoiceNum:         ptr("202506/000006200"),
			RequestUUID:            ptr("CQ95HJ649AXSDG6RF4Z71Z8ATD"),
			CreatedTimestamp:       models.MustTimestamp("2025-06-02T16:09:51.666639"),
			ModifiedTimestamp:      models.MustTimestamp("2025-06-02T16:09:52"),
		},
		{
			ID:                     6255,
			UUID:                   "GGG15XMEK13KN6ARGV2F5EXMKT",
			SettlementDate:         models.MustDate("2025-06-01"),
			BillingEntityUUID:      "JW8H2B9BT6B11R2HHXY3HYQCN6",
			EntityUUID:             "062X8PVY3XWB1",
			AlternateID:            ptr("209225173886"),
			PayableReceivable:      models.Receivable,
			Currency:               "USD",
			TotalAmount:            dec("59.99"),
			FeeAmount:              dec("59.99"),
			Tax1Amount:             dec("0"),
			Tax2Amount:             dec("0"),
			Tax3Amount:             dec("0"),
			Tax4Amount:             dec("0"),
			LookupLedgerAccountKey: "Incur.App.38NB0ETSWWP6C",
			ItemCode:               ptr("38NB0ETSWWP6C"),
			LastInvoiceNum:         ptr("202506/000006200"),
			RequestUUID:            ptr("CQ95HJ649AXSDG6RF4Z71Z8ATD"),
			CreatedTimestamp:       models.MustTimestamp("2025-06-02T16:09:51.641654"),
			ModifiedTimestamp:      models.MustTimestamp("2025-06-02T16:09:52"),
		},
		{
			ID:                     6257,
			UUID:                   "8FNKVQ3SSHT2N7AVW3KH8DS00R",
			SettlementDate:         models.MustDate("2025-06-01"),
			BillingEntityUUID:      "JW8H2B9BT6B11R2HHXY3HYQCN6",
			EntityUUID:             "062X8PVY3XWB1",
			AlternateID:            ptr("209225173886"),
			PayableReceivable:      models.Receivable,
			Currency:               "USD",
			TotalAmount:            dec("99"),
			FeeAmount:              dec("99"),
			Tax1Amount:             dec("0"),
			Tax2Amount:             dec("0"),
			Tax3Amount:             dec("0"),
			Tax4Amount:             dec("0"),
			LookupLedgerAccountKey: "Incur.App.VX7BFWEXXQ1CW",
			GLCode:                 ptr("51501"),
			ItemCode:               ptr("VX7BFWEXXQ1CW"),
			LastInvoiceNum:         ptr("202506/000006200"),
			RequestUUID:            ptr("CQ95HJ649AXSDG6RF4Z71Z8ATD"),
			CreatedTimestamp:       models.MustTimestamp("2025-06-02T16:09:51.683242"),
			ModifiedTimestamp:      models.MustTimestamp("2025-06-02T16:09:52"),
		},
		{
			ID:                     6258,
			UUID:                   "VS6EVR8GK3AWAKV8SAK4HJFC77",
			SettlementDate:         models.MustDate("2025-06-01"),
			BillingEntityUUID:      "JW8H2B9BT6B11R2HHXY3HYQCN6",
			EntityUUID:             "062X8PVY3XWB1",
			AlternateID:            ptr("209225173886"),
			PayableReceivable:      models.Receivable,
			Currency:               "USD",
			TotalAmount:            dec("89.85"),
			FeeAmount:              dec("89.85"),
			Tax1Amount:             dec("0"),
			Tax2Amount:             dec("0"),
			Tax3Amount:             dec("0"),
			Tax4Amount:             dec("0"),
			LookupLedgerAccountKey: "Incur.Plan",
			GLCode:                 ptr("51505"),
			ItemCode:               ptr("V20071.0000"),
			LastInvoiceNum:         ptr("202506/000006200"),
			RequestUUID:            ptr("CQ95HJ649AXSDG6RF4Z71Z8ATD"),
			CreatedTimestamp:       models.MustTimestamp("2025-06-02T16:09:51.700076"),
			ModifiedTimestamp:      models.MustTimestamp("2025-06-02T16:09:52"),
		},
	}

	return map[string]models.Schema{
		"billing_entity_merchant":   merchant,
		"billing_entity_clover":     clover,
		"billing_entity_us_support": usSupport,
		"invoice_info_1":            invoice,
		"fee_rate_1":                feeRates[0],
		"fee_rate_2":                feeRates[1],
		"fee_rate_3":                feeRates[2],
		"fee_rate_4":                feeRates[3],
		"fee_rate_5":                feeRates[4],
		"fee_rate_6":                feeRates[5],
		"fee_summary_1":             feeSummaries[0],
		"fee_summary_2":             feeSummaries[1],
		"fee_summary_3":             feeSummaries[2],
		"fee_summary_4":             feeSummaries[3],
		"fee_summary_5":             feeSummaries[4],
		"fee_summary_6":             feeSummaries[5],
		"settlement_1":              settlements[0],
		"settlement_2":              settlements[1],
		"settlement_3":              settlements[2],
		"settlement_4":              settlements[3],
	}
}

// nodeOrder fixes the node insertion order.
var nodeOrder = []string{
	"billing_entity_merchant",
	"billing_entity_clover",
	"billing_entity_us_support",
	"invoice_info_1",
	"fee_rate_1",
	"fee_rate_2",
	"fee_rate_3",
	"fee_rate_4",
	"fee_rate_5",
	"fee_rate_6",
	"fee_summary_1",
	"fee_summary_2",
	"fee_summary_3",
	"fee_summary_4",
	"fee_summary_5",
	"fee_summary_6",
	"settlement_1",
	"settlement_2",
	"settlement_3",
	"settlement_4",
}

// edgeOrder declares the lineage flow: the merchant owns the invoice, the
// invoice is billed under six fee rates, each rate rolls up into one fee
// summary, the summaries settle (three of them converge on settlement 4), and
// every settlement distributes to the two downstream entities.
var edgeOrder = [][2]string{
	{"billing_entity_merchant", "invoice_info_1"},

	{"invoice_info_1", "fee_rate_1"},
	{"invoice_info_1", "fee_rate_2"},
	{"invoice_info_1", "fee_rate_3"},
	{"invoice_info_1", "fee_rate_4"},
	{"invoice_info_1", "fee_rate_5"},
	{"invoice_info_1", "fee_rate_6"},

	{"fee_rate_1", "fee_summary_1"},
	{"fee_rate_2", "fee_summary_2"},
	{"fee_rate_3", "fee_summary_3"},
	{"fee_rate_4", "fee_summary_4"},
	{"fee_rate_5", "fee_summary_5"},
	{"fee_rate_6", "fee_summary_6"},

	{"fee_summary_1", "settlement_1"},
	{"fee_summary_2", "settlement_2"},
	{"fee_summary_3", "settlement_3"},
	{"fee_summary_4", "settlement_4"},
	{"fee_summary_5", "settlement_4"},
	{"fee_summary_6", "settlement_4"},

	{"settlement_1", "billing_entity_clover"},
	{"settlement_1", "billing_entity_us_support"},
	{"settlement_2", "billing_entity_clover"},
	{"settlement_2", "billing_entity_us_support"},
	{"settlement_3", "billing_entity_clover"},
	{"settlement_3", "billing_entity_us_support"},
	{"settlement_4", "billing_entity_clover"},
	{"settlement_4", "billing_entity_us_support"},
}

// Build assembles the sample record graph. The result is a DAG by
// construction; same call, same graph, same serialized bytes.
func Build() (*graph.Graph, error) {
	records := Records()
	g := graph.New()
	for _, id := range nodeOrder {
		if err := g.AddRecord(id, records[id]); err != nil {
			return nil, err
		}
	}
	for _, e := range edgeOrder {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
