// Copyright (c) 2025 Orafly Authors. All rights reserved.

package ddl

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		ddl        string
		objectType string
		owner      string
		objectName string
		want       string
	}{
		{
			name: "noneditionable package spec",
			ddl: `create or replace noneditionable package pkg_noneditionable is

end pkg_noneditionable;
`,
			objectType: KindPackage,
			owner:      "APP",
			objectName: "PKG_NONEDITIONABLE",
			want: `create or replace noneditionable package APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
`,
		},
		{
			name: "noneditionable package body",
			ddl: `create or replace noneditionable package body pkg_noneditionable is

end pkg_noneditionable;
`,
			objectType: KindPackageBody,
			owner:      "APP",
			objectName: "PKG_NONEDITIONABLE",
			want: `create or replace noneditionable package body APP.PKG_NONEDITIONABLE is

end pkg_noneditionable;
`,
		},
		{
			name: "view gains force",
			ddl: `create or replace view v_emp_summary as
select e."EMPLOYEE_ID",
       e."LAST_NAME"
  from employees e;
`,
			objectType: KindView,
			owner:      "APP",
			objectName: "V_EMP_SUMMARY",
			want: `create or replace force view APP.V_EMP_SUMMARY as
select e."EMPLOYEE_ID",
       e."LAST_NAME"
  from employees e;
`,
		},
		{
			name: "function with parameter list",
			ddl: `create or replace function fn_add(a number, b number) return number is
begin
  return a + b;
end;
`,
			objectType: KindFunction,
			owner:      "APP",
			objectName: "FN_ADD",
			want: `create or replace function APP.FN_ADD(a number, b number) return number is
begin
  return a + b;
end;
`,
		},
		{
			name: "editionable function",
			ddl: `create or replace editionable function fn_now return date is
begin
  return sysdate;
end;
`,
			objectType: KindFunction,
			owner:      "APP",
			objectName: "FN_NOW",
			want: `create or replace editionable function APP.FN_NOW return date is
begin
  return sysdate;
end;
`,
		},
		{
			name: "trigger gets header line break",
			ddl: "create or replace trigger trg_emp_audit\n" +
				"  before insert on employees\n" +
				"  for each row\n" +
				"begin\n" +
				"  null;\n" +
				"end;\n",
			objectType: KindTrigger,
			owner:      "APP",
			objectName: "TRG_EMP_AUDIT",
			want: "create or replace trigger APP.TRG_EMP_AUDIT \n" +
				"before insert on employees\n" +
				"  for each row\n" +
				"begin\n" +
				"  null;\n" +
				"end;\n",
		},
		{
			name:       "type gains force before as",
			ddl:        "create or replace type t_point as object (x number, y number);\n",
			objectType: KindType,
			owner:      "APP",
			objectName: "T_POINT",
			want:       "create or replace type APP.T_POINT force as object (x number, y number);\n",
		},
		{
			name: "type body stays force free",
			ddl: `create or replace type body t_point is
  member function norm return number is
  begin
    return 0;
  end;
end;
`,
			objectType: KindTypeBody,
			owner:      "APP",
			objectName: "T_POINT",
			want: `create or replace type body APP.T_POINT is
  member function norm return number is
  begin
    return 0;
  end;
end;
`,
		},
		{
			name:       "mixed case header is lowercased",
			ddl:        "CREATE OR REPLACE PROCEDURE Prc_Mixed IS\nBEGIN\n  NULL;\nEND;\n",
			objectType: KindProcedure,
			owner:      "APP",
			objectName: "PRC_MIXED",
			want:       "create or replace procedure APP.PRC_MIXED is\nBEGIN\n  NULL;\nEND;\n",
		},
		{
			name: "text before the header passes through",
			ddl: `-- utility procedure
create or replace procedure prc_noop is
begin
  null;
end;
`,
			objectType: KindProcedure,
			owner:      "APP",
			objectName: "PRC_NOOP",
			want: `-- utility procedure
create or replace procedure APP.PRC_NOOP is
begin
  null;
end;
`,
		},
		{
			name:       "input without a header is returned unchanged",
			ddl:        "grant select on employees to app_ro;\n",
			objectType: KindFunction,
			owner:      "APP",
			objectName: "FN_ADD",
			want:       "grant select on employees to app_ro;\n",
		},
		{
			name:       "empty input",
			ddl:        "",
			objectType: KindPackage,
			owner:      "APP",
			objectName: "PKG_EMPTY",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.ddl, tt.objectType, tt.owner, tt.objectName)
			if got != tt.want {
				t.Errorf("Normalize() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, objectType := range []string{
		KindFunction, KindProcedure, KindPackage, KindType, KindView, KindTrigger,
	} {
		if !Supported(objectType) {
			t.Errorf("Supported(%q) = false, want true", objectType)
		}
	}

	for _, objectType := range []string{"TABLE", "SEQUENCE", "SYNONYM", "PACKAGE BODY", "", "package"} {
		if Supported(objectType) {
			t.Errorf("Supported(%q) = true, want false", objectType)
		}
	}
}

func TestBodyKind(t *testing.T) {
	tests := []struct {
		objectType string
		want       string
	}{
		{KindPackage, KindPackageBody},
		{KindType, KindTypeBody},
		{KindFunction, ""},
		{KindView, ""},
	}

	for _, tt := range tests {
		if got := BodyKind(tt.objectType); got != tt.want {
			t.Errorf("BodyKind(%q) = %q, want %q", tt.objectType, got, tt.want)
		}
	}
}
