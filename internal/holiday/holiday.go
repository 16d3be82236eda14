// Package holiday supplies the public-holiday overlay for the calendar
// views: a lookup from a date to the holidays of its month, keyed by ISO date
// string.
package holiday

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-scheduler/pkg/dategrid"
)

// Provider returns the holidays of the month containing a date as a mapping
// from "YYYY-MM-DD" to holiday name. Months without holidays yield an empty
// map, never nil.
type Provider interface {
	ForMonth(t time.Time) map[string]string
}

type tableProvider struct {
	table map[string]string
	cache *expirable.LRU[string, map[string]string]
}

// NewProvider builds a Provider over the built-in holiday table with a small
// per-month result cache.
func NewProvider() Provider {
	return &tableProvider{
		table: koreanHolidays,
		cache: expirable.NewLRU[string, map[string]string](24, nil, time.Hour),
	}
}

func (p *tableProvider) ForMonth(t time.Time) map[string]string {
	key := fmt.Sprintf("%d-%s", t.Year(), dategrid.FillZero(int(t.Month()), 2))

	if cached, ok := p.cache.Get(key); ok {
		return cached
	}

	month := map[string]string{}
	for date, name := range p.table {
		if strings.HasPrefix(date, key+"-") {
			month[date] = name
		}
	}

	p.cache.Add(key, month)
	return month
}

// koreanHolidays is the static public-holiday table. Treated as opaque data
// by everything else; swapping in another country or a remote source only
// means providing a different Provider.
var koreanHolidays = map[string]string{
	"2025-01-01": "신정",
	"2025-01-29": "설날",
	"2025-01-30": "설날",
	"2025-01-31": "설날",
	"2025-03-01": "삼일절",
	"2025-05-05": "어린이날",
	"2025-06-06": "현충일",
	"2025-08-15": "광복절",
	"2025-10-03": "개천절",
	"2025-10-05": "추석",
	"2025-10-06": "추석",
	"2025-10-07": "추석",
	"2025-10-09": "한글날",
	"2025-12-25": "크리스마스",
}
