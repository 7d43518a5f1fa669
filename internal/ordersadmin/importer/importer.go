package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

var (
	ErrEmptyFile     = errors.New("import file has no data rows")
	ErrMissingHeader = errors.New("import file is missing required columns")
)

var requiredColumns = []string{"cnic", "customerName", "mobile1", "address", "city", "product", "qty", "poNumber", "orderDate", "amount"}

type Creator interface {
	CreateBipOrder(ctx context.Context, order backendprotocol.CreateBipOrder) (backendprotocol.BipOrder, error)
}

type RowOutcome struct {
	Row      int    `json:"row"`
	PONumber string `json:"poNumber,omitempty"`
	OK       bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Report mirrors the bulk-dispatch report: one outcome per data row, in file
// order, Created+Failed == len(Outcomes).
type Report struct {
	Created  int          `json:"createdCount"`
	Failed   int          `json:"failureCount"`
	Outcomes []RowOutcome `json:"outcomes"`
}

// Importer creates installment orders from an operator-uploaded CSV, one
// upstream call per row, sequentially, continuing past row failures.
type Importer struct {
	creator Creator
	logger  *logging.ZapLogger
}

func New(creator Creator, logger *logging.ZapLogger) *Importer {
	return &Importer{
		creator: creator,
		logger:  logger,
	}
}

// ImportCSV parses a header-addressed CSV of BIP order rows. A structurally
// broken file fails as a whole before any order is created; a bad row is a
// recorded failure and the import continues.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (Report, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Report{}, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(rows) < 2 {
		return Report{}, ErrEmptyFile
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Outcomes: make([]RowOutcome, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		rowNumber := i + 2 // 1-based, after the header
		order, err := parseRow(columns, row)
		if err != nil {
			report.Failed++
			report.Outcomes = append(report.Outcomes, RowOutcome{Row: rowNumber, PONumber: order.PONumber, Error: err.Error()})
			continue
		}
		if _, err := im.creator.CreateBipOrder(ctx, order); err != nil {
			im.logger.ErrorCtx(ctx, "order import failed",
				zap.Int("row", rowNumber),
				zap.String("poNumber", order.PONumber),
				zap.Error(err),
			)
			report.Failed++
			report.Outcomes = append(report.Outcomes, RowOutcome{Row: rowNumber, PONumber: order.PONumber, Error: err.Error()})
			continue
		}
		report.Created++
		report.Outcomes = append(report.Outcomes, RowOutcome{Row: rowNumber, PONumber: order.PONumber, OK: true})
	}
	return report, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeader, strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseRow(columns map[string]int, row []string) (backendprotocol.CreateBipOrder, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	order := backendprotocol.CreateBipOrder{
		Eforms:             cell("eforms"),
		CNIC:               cell("cnic"),
		CustomerName:       cell("customerName"),
		Mobile1:            cell("mobile1"),
		AuthorizedReceiver: cell("authorizedReceiver"),
		ReceiverCNIC:       cell("receiverCnic"),
		Address:            cell("address"),
		City:               cell("city"),
		Product:            cell("product"),
		GiftCode:           cell("giftCode"),
		PONumber:           cell("poNumber"),
		OrderDate:          cell("orderDate"),
		Color:              cell("color"),
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"cnic", order.CNIC},
		{"customerName", order.CustomerName},
		{"mobile1", order.Mobile1},
		{"address", order.Address},
		{"city", order.City},
		{"product", order.Product},
		{"poNumber", order.PONumber},
		{"orderDate", order.OrderDate},
	} {
		if field.value == "" {
			return order, fmt.Errorf("missing %s", field.name)
		}
	}

	qty, err := strconv.Atoi(cell("qty"))
	if err != nil || qty <= 0 {
		return order, fmt.Errorf("qty must be a positive integer, got %q", cell("qty"))
	}
	order.Qty = qty

	amount, err := decimal.NewFromString(cell("amount"))
	if err != nil || amount.IsNegative() {
		return order, fmt.Errorf("amount must be a non-negative number, got %q", cell("amount"))
	}
	order.Amount = amount

	return order, nil
}
