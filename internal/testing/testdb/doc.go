// Package testdb provides test database utilities for e2e testing.
//
// Each TestDB connects to a real SurrealDB instance under a unique
// namespace and applies the embedded schema. When no instance answers, the
// calling test is skipped.
//
// The connection is configured by TEST_DB_URL, or by TEST_DB_HOST,
// TEST_DB_PORT, TEST_DB_USER and TEST_DB_PASSWORD (defaults localhost,
// 8000, root, root).
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    results := tdb.MustQuery("SELECT * FROM person", nil)
//	}
//
// For subtests that need a clean table:
//
//	shared := testdb.NewShared(t)
//	defer shared.Close()
//	t.Run("create", func(t *testing.T) {
//	    tdb := shared.SetupSubtest(t)
//	    ...
//	})
package testdb
