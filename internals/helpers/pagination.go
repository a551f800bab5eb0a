// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Paging resolver (query → limit/offset)
=================================*/

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging membaca ?limit= & ?offset= dan normalisasi.
// maxLimit 0 berarti tanpa batas atas (service layer memang tidak membatasi).
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(strings.TrimSpace(c.Query("offset")))
	if err != nil || offset < 0 {
		offset = 0
	}

	return Paging{Limit: limit, Offset: offset}
}

/* ===============================
   ORDER BY aman (kolom dari whitelist)
=================================*/

// SafeSortClause memetakan sort_by ke kolom dari whitelist. Key yang tidak
// dikenal jatuh diam-diam ke defaultKey (tidak pernah error — behavior ini
// observable dan dites). sort_dir selain "asc" dianggap "desc".
func SafeSortClause(allowed map[string]string, sortBy, defaultKey, sortDir string) string {
	col, ok := allowed[strings.TrimSpace(sortBy)]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(sortDir), "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
