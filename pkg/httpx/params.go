package httpx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrBadParam — некорректный параметр запроса, отвечаем 400.
var ErrBadParam = errors.New("bad request parameter")

// Page — окно выборки из ?limit=&offset=.
type Page struct {
	Limit  int
	Offset int
}

// ClampInt — v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParsePage — limit по умолчанию defaultLimit и не больше maxLimit, offset от нуля.
// Нечисловые значения, limit < 1 и отрицательный offset дают ErrBadParam.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) (Page, error) {
	p := Page{Limit: ClampInt(defaultLimit, 1, maxLimit)}

	if raw, ok := c.GetQuery("limit"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("%w: limit=%q", ErrBadParam, raw)
		}
		p.Limit = min(v, maxLimit)
	}
	if raw, ok := c.GetQuery("offset"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("%w: offset=%q", ErrBadParam, raw)
		}
		p.Offset = v
	}
	return p, nil
}
