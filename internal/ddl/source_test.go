// Copyright (c) 2025 Orafly Authors. All rights reserved.

package ddl

import "testing"

const testPackageSpec = `create or replace noneditionable package pkg_noneditionable is

end pkg_noneditionable;
`

const testPackageBody = `create or replace noneditionable package body pkg_noneditionable is

end pkg_noneditionable;
`

// fetchFromMap returns a FetchFunc serving canned sources keyed by object
// kind, standing in for the database-backed fetcher.
func fetchFromMap(sources map[string]string) FetchFunc {
	return func(objectType, owner, name string) string {
		return sources[objectType]
	}
}

func TestAssembleSource_PackageWithBody(t *testing.T) {
	fetch := fetchFromMap(map[string]string{
		KindPackage:     testPackageSpec,
		KindPackageBody: testPackageBody,
	})

	got := AssembleSource(fetch, KindPackage, "APP", "PKG_NONEDITIONABLE")

	want := `create or replace noneditionable package APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
/
create or replace noneditionable package body APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
/
`
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleSource_PackageWithoutBody(t *testing.T) {
	fetch := fetchFromMap(map[string]string{
		KindPackage:     testPackageSpec,
		KindPackageBody: MissingBodyComment(KindPackageBody, "PKG_NONEDITIONABLE"),
	})

	got := AssembleSource(fetch, KindPackage, "APP", "PKG_NONEDITIONABLE")

	want := `create or replace noneditionable package APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
/
`
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleSource_TypeWithBody(t *testing.T) {
	fetch := fetchFromMap(map[string]string{
		KindType:     "create or replace type t_point as object (x number, y number);\n",
		KindTypeBody: "create or replace type body t_point is\nend;\n",
	})

	got := AssembleSource(fetch, KindType, "APP", "T_POINT")

	// The spec gains force, the body must not.
	want := "create or replace type APP.T_POINT force as object (x number, y number);\n" +
		"/\n" +
		"create or replace type body APP.T_POINT is\nend;\n" +
		"/\n"
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleSource_TypeWithoutBody(t *testing.T) {
	fetch := fetchFromMap(map[string]string{
		KindType:     "create or replace type t_id_list as table of number;\n",
		KindTypeBody: MissingBodyComment(KindTypeBody, "T_ID_LIST"),
	})

	got := AssembleSource(fetch, KindType, "APP", "T_ID_LIST")

	want := "create or replace type APP.T_ID_LIST force as table of number;\n/\n"
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleSource_ViewFetchedOnce(t *testing.T) {
	calls := 0
	fetch := func(objectType, owner, name string) string {
		calls++
		if objectType != KindView {
			t.Errorf("unexpected fetch of %q", objectType)
		}
		return "create or replace view v_emps as\nselect * from employees;\n"
	}

	got := AssembleSource(fetch, KindView, "APP", "V_EMPS")

	want := "create or replace force view APP.V_EMPS as\nselect * from employees;\n"
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
	if calls != 1 {
		t.Errorf("expected a single fetch, got %d", calls)
	}
}

func TestMissingBodyComment_MatchesDetection(t *testing.T) {
	fetch := fetchFromMap(map[string]string{
		KindPackage:     testPackageSpec,
		KindPackageBody: "  \n" + MissingBodyComment(KindPackageBody, `PKG_QUOTED"X"`) + "\n",
	})

	// Leading and trailing whitespace around the sentinel must not defeat
	// the detection.
	got := AssembleSource(fetch, KindPackage, "APP", "PKG_NONEDITIONABLE")

	want := `create or replace noneditionable package APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
/
`
	if got != want {
		t.Errorf("AssembleSource() =\n%q\nwant\n%q", got, want)
	}
}
