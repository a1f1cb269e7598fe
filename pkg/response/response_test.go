package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	apperrors "procurehub/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(r, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	req := require.New(t)
	c, rec := newTestContext()

	req.NoError(Success(c, map[string]string{"hello": "world"}))

	req.Equal(http.StatusOK, rec.Code)
	resp := decode(t, rec)
	req.True(resp.Success)
	req.Nil(resp.Error)
	req.NotEmpty(resp.Timestamp)
}

func TestCreated(t *testing.T) {
	req := require.New(t)
	c, rec := newTestContext()

	req.NoError(Created(c, nil))

	req.Equal(http.StatusCreated, rec.Code)
	req.True(decode(t, rec).Success)
}

func TestPaginated(t *testing.T) {
	req := require.New(t)
	c, rec := newTestContext()

	req.NoError(Paginated(c, []string{"a", "b"}, 21, 1, 10))

	resp := decode(t, rec)
	req.True(resp.Success)

	raw, err := json.Marshal(resp.Data)
	req.NoError(err)
	var page PaginatedResponse
	req.NoError(json.Unmarshal(raw, &page))
	req.Equal(int64(21), page.Total)
	req.Equal(3, page.TotalPages)
}

func TestError(t *testing.T) {
	t.Run("app errors keep their status and code", func(t *testing.T) {
		req := require.New(t)
		c, rec := newTestContext()

		req.NoError(Error(c, apperrors.NotFound("Product", nil)))

		req.Equal(http.StatusNotFound, rec.Code)
		resp := decode(t, rec)
		req.False(resp.Success)
		req.Equal("NOT_FOUND", resp.Error.Code)
		req.Equal("Product not found", resp.Error.Message)
	})

	t.Run("unknown errors are masked as internal", func(t *testing.T) {
		req := require.New(t)
		c, rec := newTestContext()

		req.NoError(Error(c, fmt.Errorf("pq: connection reset")))

		req.Equal(http.StatusInternalServerError, rec.Code)
		resp := decode(t, rec)
		req.Equal("INTERNAL_ERROR", resp.Error.Code)
		req.NotContains(resp.Error.Message, "pq:")
	})

	t.Run("validation errors are translated per tag", func(t *testing.T) {
		req := require.New(t)
		c, rec := newTestContext()

		type payload struct {
			Email string `validate:"required,email"`
		}
		err := validator.New().Struct(payload{Email: "nope"})
		req.Error(err)

		req.NoError(Error(c, err))

		req.Equal(http.StatusBadRequest, rec.Code)
		resp := decode(t, rec)
		req.Equal("VALIDATION_ERROR", resp.Error.Code)
		req.Equal("email must be a valid email address", resp.Error.Message)
	})
}
