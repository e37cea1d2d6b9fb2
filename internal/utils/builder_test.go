package querybuilder

import (
	"reflect"
	"testing"
)

func TestBuildSelect(t *testing.T) {
	query, args := NewQueryBuilder("").
		Select("s.id", "u.user_name").
		From("submissions s").
		Join(JoinTypeLeft, "users", "u", "u.id = s.user_id").
		Where("s.problem_id = ?", "p1").
		OrderBy("s.created_at", false).
		Build()

	want := "SELECT s.id, u.user_name FROM submissions s LEFT JOIN users u ON u.id = s.user_id WHERE s.problem_id = ? ORDER BY s.created_at DESC"
	if query != want {
		t.Fatalf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"p1"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildSelectQualifiesJoinedTables(t *testing.T) {
	query, args := NewQueryBuilder("app").
		Select("s.id", "u.user_name").
		From("submissions s").
		Join(JoinTypeLeft, "users", "u", "u.id = s.user_id").
		Where("s.problem_id = ?", "p1").
		And("s.language = ?", "cpp").
		Build()

	want := "SELECT s.id, u.user_name FROM app.submissions s LEFT JOIN app.users u ON u.id = s.user_id WHERE s.problem_id = ? AND s.language = ?"
	if query != want {
		t.Fatalf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"p1", "cpp"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildInsertQualifiesTable(t *testing.T) {
	query, _ := NewQueryBuilder("app").Insert("a").Into("t").Values(1).Build()
	if want := "INSERT INTO app.t (a) VALUES (?)"; query != want {
		t.Fatalf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
}

func TestBuildInsertUpsert(t *testing.T) {
	query, args := NewQueryBuilder("").
		Insert("problem_id", "user_id", "code").
		Into("user_codes").
		Values(1, 2, "x").
		OnConflict("problem_id", "user_id").
		DoUpdateExcluded("code").
		Build()

	want := "INSERT INTO user_codes (problem_id, user_id, code) VALUES (?, ?, ?) ON CONFLICT (problem_id, user_id) DO UPDATE SET code = EXCLUDED.code"
	if query != want {
		t.Fatalf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
}

func TestBuildInsertWithoutUpdateDoesNothing(t *testing.T) {
	query, _ := NewQueryBuilder("").
		Insert("a", "b").
		Into("t").
		Values(1, 2).
		Values(3, 4).
		OnConflict("a").
		Build()
	want := "INSERT INTO t (a, b) VALUES (?, ?), (?, ?) ON CONFLICT (a) DO NOTHING"
	if query != want {
		t.Fatalf("query mismatch:\n got: %s\nwant: %s", query, want)
	}

	query, args := NewQueryBuilder("").Insert("a", "b").Into("t").Values(1).Build()
	if query != "" || args != nil {
		t.Fatalf("expected empty query for mismatched row, got %q %v", query, args)
	}
}
