package bank_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/importer/bank"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Releve(t *testing.T) {
	csv := `Relevé de compte - 31/03/2024
Titulaire;JEAN DUPONT
IBAN;FR76 0000 0000 0000

Solde initial;2 500,00 EUR
Solde final;2 180,50 EUR

Date;Libellé;Montant
28/03/2024;VIREMENT SALAIRE;3 200,00
15/03/2024;PRELEVEMENT LOYER;-1 200,00
`

	p := bank.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2024, 3, 28), txs[0].Date)
	assert.Equal(t, "VIREMENT SALAIRE", txs[0].Description)
	assert.Equal(t, int64(320000), txs[0].Amount)
	assert.Equal(t, financial.TypeIncome, txs[0].Type)

	assert.Equal(t, date(2024, 3, 15), txs[1].Date)
	assert.Equal(t, "PRELEVEMENT LOYER", txs[1].Description)
	assert.Equal(t, int64(120000), txs[1].Amount)
	assert.Equal(t, financial.TypeExpense, txs[1].Type)
}

func TestParser_Carte(t *testing.T) {
	csv := `Opérations carte - 31/03/2024
Titulaire;JEAN DUPONT
Carte;4970 **** **** 1234

Date;Libellé;Débit;Crédit
22/03/2024;CARREFOUR MARKET PARIS;86,40;
18/03/2024;REMBOURSEMENT SNCF;;45,00
 ; ; ;Page 1/1
`

	p := bank.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, date(2024, 3, 22), txs[0].Date)
	assert.Equal(t, "CARREFOUR MARKET PARIS", txs[0].Description)
	assert.Equal(t, int64(8640), txs[0].Amount)
	assert.Equal(t, financial.TypeExpense, txs[0].Type)

	assert.Equal(t, date(2024, 3, 18), txs[1].Date)
	assert.Equal(t, int64(4500), txs[1].Amount)
	assert.Equal(t, financial.TypeIncome, txs[1].Type)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Date;Libellé;Montant\n12/03/2024;CAFÉ DE LA GARE;-4,50\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := bank.NewParser()
	txs, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "CAFÉ DE LA GARE", txs[0].Description)
	assert.Equal(t, int64(450), txs[0].Amount)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random;MetaData
Montant;Libellé;Date;Ignored
-10,00;TEST_ORDER;30/01/2024;XXX
`

	p := bank.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "TEST_ORDER", txs[0].Description)
	assert.Equal(t, int64(1000), txs[0].Amount)
}

func TestParser_EmptyFile(t *testing.T) {
	p := bank.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Date;Libellé;Montant`

	p := bank.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParser_ImportCategory(t *testing.T) {
	csv := `Date;Libellé;Montant
30/01/2024;TEST;-10,00
`

	p := bank.NewParser()
	txs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "Import bancaire", txs[0].Category)
}
