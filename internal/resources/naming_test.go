package resources

import "testing"

func TestNaming_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		naming Naming
		input  string
		want   string
	}{
		{
			name:   "default naming applies prefix and suffix",
			naming: DefaultNaming(),
			input:  "invoice",
			want:   "templates/invoice.hbs",
		},
		{
			name:   "leading separator stripped",
			naming: DefaultNaming(),
			input:  "/invoice",
			want:   "templates/invoice.hbs",
		},
		{
			name:   "existing prefix and suffix not doubled",
			naming: DefaultNaming(),
			input:  "/templates/invoice.hbs",
			want:   "templates/invoice.hbs",
		},
		{
			name:   "backslashes converted",
			naming: DefaultNaming(),
			input:  "reports\\monthly",
			want:   "templates/reports/monthly.hbs",
		},
		{
			name:   "empty prefix",
			naming: Naming{Suffix: ".hbs"},
			input:  "invoice",
			want:   "invoice.hbs",
		},
		{
			name:   "root prefix behaves like empty",
			naming: Naming{Prefix: "/", Suffix: ".hbs"},
			input:  "/invoice",
			want:   "invoice.hbs",
		},
		{
			name:   "prefix with trailing slash",
			naming: Naming{Prefix: "views/", Suffix: ".html"},
			input:  "cover",
			want:   "views/cover.html",
		},
		{
			name:   "no prefix or suffix",
			naming: Naming{},
			input:  "/fonts/Arial.ttf",
			want:   "fonts/Arial.ttf",
		},
		{
			name:   "prefix only matches whole segment",
			naming: DefaultNaming(),
			input:  "templatesx/a",
			want:   "templates/templatesx/a.hbs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.naming.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRawName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"fonts/Arial.ttf", "fonts/Arial.ttf"},
		{"/fonts/Arial.ttf", "fonts/Arial.ttf"},
		{"\\images\\logo.png", "images/logo.png"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RawName(tt.input); got != tt.want {
			t.Errorf("RawName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUploadKey(t *testing.T) {
	t.Parallel()

	if got := UploadKey("report"); got != "upload://report.hbs" {
		t.Errorf("UploadKey() = %q, want %q", got, "upload://report.hbs")
	}
	if !IsUploadName("upload://report") {
		t.Error("IsUploadName(upload://report) = false, want true")
	}
	if IsUploadName("report") {
		t.Error("IsUploadName(report) = true, want false")
	}
}
