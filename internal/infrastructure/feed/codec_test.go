package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `shop: Связной
categories:
  - id: 224
    name: Смартфоны
  - id: 15
    name: Аксессуары
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Смартфон Apple iPhone XS Max 512GB (золотистый)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Диагональ (дюйм)": "6.5"
      "Встроенная память (Гб)": "512"
      "Цвет": золотистый
  - id: 4216313
    category: 15
    model: mi/powerbank
    name: Внешний аккумулятор
    price: 1290.50
    price_rrc: 1490
    quantity: 0
`

func TestDecode(t *testing.T) {
	f, err := Decode([]byte(sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, "Связной", f.Shop)

	require.Len(t, f.Categories, 2)
	assert.Equal(t, int64(224), f.Categories[0].ID)
	assert.Equal(t, "Смартфоны", f.Categories[0].Name)

	require.Len(t, f.Goods, 2)
	phone := f.Goods[0]
	assert.Equal(t, int64(4216292), phone.ID)
	assert.Equal(t, int64(224), phone.Category)
	assert.Equal(t, "apple/iphone/xs-max", phone.Model)
	assert.Equal(t, "110000", phone.Price)
	assert.Equal(t, "116990", phone.PriceRRC)
	assert.Equal(t, 14, phone.Quantity)
	assert.Equal(t, "512", phone.Parameters["Встроенная память (Гб)"])

	powerbank := f.Goods[1]
	assert.Equal(t, "1290.50", powerbank.Price)
	assert.Equal(t, 0, powerbank.Quantity)
	assert.Empty(t, powerbank.Parameters)
}

func TestDecode_Invalid(t *testing.T) {
	t.Run("not yaml", func(t *testing.T) {
		_, err := Decode([]byte("{{{"))
		assert.Error(t, err)
	})

	t.Run("missing shop name", func(t *testing.T) {
		_, err := Decode([]byte("categories: []\ngoods: []\n"))
		assert.Error(t, err)
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	original, err := Decode([]byte(sampleFeed))
	require.NoError(t, err)

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestFile_ToImport(t *testing.T) {
	f, err := Decode([]byte(sampleFeed))
	require.NoError(t, err)

	categories, items := f.ToImport()

	require.Len(t, categories, 2)
	assert.Equal(t, int64(224), categories[0].ExternalID)
	assert.Equal(t, "Смартфоны", categories[0].Name)

	require.Len(t, items, 2)
	assert.Equal(t, int64(4216292), items[0].ExternalID)
	assert.Equal(t, int64(224), items[0].CategoryExt)
	assert.Equal(t, "110000", items[0].Price)
	assert.Equal(t, "6.5", items[0].Parameters["Диагональ (дюйм)"])
}
