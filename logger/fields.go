package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldTest      = "test"
	FieldSession   = "session_id"
	FieldOperation = "operation"
	FieldEntity    = "entity"
	FieldTable     = "table"
	FieldSQL       = "sql"
	FieldRows      = "rows"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Debug("insert", logger.Fields("table", "Employee", "rows", 1))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// StatementFields creates fields for an executed statement batch.
func StatementFields(op, table, sql string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldTable:     table,
		FieldSQL:       sql,
		FieldDuration:  d.Milliseconds(),
	}
}
