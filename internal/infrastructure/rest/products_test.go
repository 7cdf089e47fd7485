package rest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales365/terminal/internal/core/ports"
)

func TestProductCreateSendsMultipartForm(t *testing.T) {
	var (
		method   string
		path     string
		form     map[string]string
		fileName string
		fileData []byte
	)
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			form[key] = values[0]
		}
		if file, header, err := r.FormFile("imagen_file"); err == nil {
			fileName = header.Filename
			fileData, _ = io.ReadAll(file)
			file.Close()
		}
		_, _ = w.Write([]byte(`{"id":10,"nombre":"Laptop Pro","precio":"1499.90","stock":5}`))
	})

	product, err := NewProductGateway(client).Create(context.Background(), ports.ProductInput{
		Name:           "Laptop Pro",
		Brand:          "Acme",
		Model:          "X1",
		Category:       "laptops",
		Description:    "14 pulgadas",
		Price:          1499.9,
		Stock:          5,
		WarrantyMonths: 12,
		Image:          &ports.FileUpload{Name: "laptop.png", Reader: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/productos/", path)
	assert.Equal(t, "Laptop Pro", form["nombre"])
	assert.Equal(t, "Acme", form["marca"])
	assert.Equal(t, "X1", form["modelo"])
	assert.Equal(t, "laptops", form["categoria"])
	assert.Equal(t, "1499.90", form["precio"])
	assert.Equal(t, "5", form["stock"])
	assert.Equal(t, "12", form["garantia_meses"])
	assert.Equal(t, "laptop.png", fileName)
	assert.Equal(t, []byte("png-bytes"), fileData)
}

func TestProductUpdateWithoutImageOmitsFilePart(t *testing.T) {
	var hadImage bool
	var path string
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("imagen_file")
		hadImage = err == nil
		_, _ = w.Write([]byte(`{"id":10}`))
	})

	_, err := NewProductGateway(client).Update(context.Background(), 10, ports.ProductInput{
		Name: "Laptop Pro", Brand: "Acme", Category: "laptops", Price: 1499.9,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/productos/10/", path)
	assert.False(t, hadImage)
}

func TestProductBulkUpload(t *testing.T) {
	var fileName string
	var fileData []byte
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos/upload_masivo/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("archivo")
		require.NoError(t, err)
		defer file.Close()
		fileName = header.Filename
		fileData, _ = io.ReadAll(file)
		_, _ = w.Write([]byte(`{"creados":7,"errores":["fila 3: precio invalido"]}`))
	})

	result, err := NewProductGateway(client).BulkUpload(context.Background(), ports.FileUpload{
		Name:   "productos.xlsx",
		Reader: strings.NewReader("xlsx-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "productos.xlsx", fileName)
	assert.Equal(t, []byte("xlsx-bytes"), fileData)
	assert.Equal(t, 7, result.Created)
	assert.Equal(t, []string{"fila 3: precio invalido"}, result.Errors)
}

func TestProductListDecodesDecimalStrings(t *testing.T) {
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Mouse","precio":"25.50","stock":100}]`))
	})

	products, err := NewProductGateway(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.InDelta(t, 25.50, float64(products[0].Price), 0.001)
}
