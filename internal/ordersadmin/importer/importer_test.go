package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

type fakeCreator struct {
	created []backendprotocol.CreateBipOrder
	failFor map[string]error
}

func (f *fakeCreator) CreateBipOrder(_ context.Context, order backendprotocol.CreateBipOrder) (backendprotocol.BipOrder, error) {
	if err := f.failFor[order.PONumber]; err != nil {
		return backendprotocol.BipOrder{}, err
	}
	f.created = append(f.created, order)
	return backendprotocol.BipOrder{ID: "new", PONumber: order.PONumber}, nil
}

const header = "eforms,cnic,customerName,mobile1,address,city,product,qty,poNumber,orderDate,amount,color\n"

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestImportCSVCreatesRows(t *testing.T) {
	body := header +
		"EF1,3520112345671,Ali Raza,03001234567,Street 1,Lahore,Fridge,1,PO-1,2026-08-01,85000,White\n" +
		"EF2,3520112345672,Sara Khan,03007654321,Street 2,Karachi,Oven,2,PO-2,2026-08-02,45000,Black\n"
	creator := &fakeCreator{}
	importer := New(creator, logging.NewNop())

	report, err := importer.ImportCSV(context.Background(), strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Failed)
	require.Len(t, creator.created, 2)
	assert.Equal(t, "PO-1", creator.created[0].PONumber)
	assert.Equal(t, 2, creator.created[1].Qty)
	assert.True(t, creator.created[1].Amount.Equal(decimalFromString(t, "45000")))
}

func TestImportCSVContinuesPastBadRows(t *testing.T) {
	body := header +
		"EF1,3520112345671,Ali Raza,03001234567,Street 1,Lahore,Fridge,1,PO-1,2026-08-01,85000,White\n" +
		"EF2,,Sara Khan,03007654321,Street 2,Karachi,Oven,2,PO-2,2026-08-02,45000,Black\n" +
		"EF3,3520112345673,Bilal Ahmed,03009998877,Street 3,Multan,TV,0,PO-3,2026-08-03,120000,Silver\n" +
		"EF4,3520112345674,Hina Shah,03004443322,Street 4,Quetta,AC,1,PO-4,2026-08-04,oops,Grey\n" +
		"EF5,3520112345675,Umar Farooq,03001112233,Street 5,Peshawar,Washer,1,PO-5,2026-08-05,65000,Blue\n"
	creator := &fakeCreator{failFor: map[string]error{"PO-5": errors.New("duplicate poNumber")}}
	importer := New(creator, logging.NewNop())

	report, err := importer.ImportCSV(context.Background(), strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 4, report.Failed)
	require.Len(t, report.Outcomes, 5)

	assert.True(t, report.Outcomes[0].OK)
	assert.Contains(t, report.Outcomes[1].Error, "missing cnic")
	assert.Contains(t, report.Outcomes[2].Error, "qty")
	assert.Contains(t, report.Outcomes[3].Error, "amount")
	assert.Contains(t, report.Outcomes[4].Error, "duplicate poNumber")
	assert.Equal(t, 2, report.Outcomes[0].Row, "row numbers are file positions, header included")
	assert.Equal(t, 6, report.Outcomes[4].Row)
}

func TestImportCSVRejectsWholeFile(t *testing.T) {
	creator := &fakeCreator{}
	importer := New(creator, logging.NewNop())

	_, err := importer.ImportCSV(context.Background(), strings.NewReader("poNumber,cnic\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = importer.ImportCSV(context.Background(), strings.NewReader("a,b\n1,2\n"))
	assert.ErrorIs(t, err, ErrMissingHeader)

	_, err = importer.ImportCSV(context.Background(), strings.NewReader(header+"\"unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed CSV")

	assert.Empty(t, creator.created, "a rejected file must create nothing")
}
