package services

import (
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
)

// isDuplicateKey detects unique-constraint violations across the MySQL
// driver and the sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
