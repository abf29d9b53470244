package styles

import "testing"

func TestEllipsisDeclaration(t *testing.T) {
	tests := []struct {
		width string
		isMax bool
		want  string
	}{
		{"100px", false, "width: 100px;\nwhite-space: nowrap;\noverflow: hidden;\ntext-overflow: ellipsis;\n"},
		{"50%", true, "max-width: 50%;\nwhite-space: nowrap;\noverflow: hidden;\ntext-overflow: ellipsis;\n"},
		{"2.4rem", false, "width: 2.4rem;\nwhite-space: nowrap;\noverflow: hidden;\ntext-overflow: ellipsis;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.width, func(t *testing.T) {
			if got := EllipsisDeclaration(tt.width, tt.isMax); string(got) != tt.want {
				t.Errorf("EllipsisDeclaration(%q, %v) = %q, want %q", tt.width, tt.isMax, got, tt.want)
			}
		})
	}
}

func TestErrorKind(t *testing.T) {
	err := NewError(ErrorKindInvalidFlagType, "isMax must be a boolean, got %T", 1)
	if err.Error() != "InvalidFlagType: isMax must be a boolean, got int" {
		t.Errorf("Error() = %q", err.Error())
	}
	if ErrInvalidPropsType.Error() != "InvalidPropsType" {
		t.Errorf("sentinel Error() = %q", ErrInvalidPropsType.Error())
	}
	kind, err2 := ParseErrorKind("InvalidAllowListType")
	if err2 != nil || kind != ErrorKindInvalidAllowListType {
		t.Errorf("ParseErrorKind() = %v, %v", kind, err2)
	}
	if _, err2 := ParseErrorKind("Nope"); err2 == nil {
		t.Error("expected error for unknown kind")
	}
}
