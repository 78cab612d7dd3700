// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quizconv/internal/tabular"
	"github.com/pdiddy/quizconv/pkg/types"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "문제번호", want: "문제번호"},
		{in: " 문제 번호 ", want: "문제번호"},
		{in: "\t문제  번호\n", want: "문제번호"},
		{in: "선택지 1", want: "선택지1"},
		{in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeColumn(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeColumn(got), "normalization must be idempotent")
		})
	}
}

func TestOptionNumber(t *testing.T) {
	assert.Equal(t, "3", OptionNumber("선택지3"))
	assert.Equal(t, "12", OptionNumber("선택지12번"))
	assert.Equal(t, "1", OptionNumber("선택지1-2"))
	assert.Equal(t, "0", OptionNumber("선택지"))
}

func newTestTable(t *testing.T, conv *Converter, header []string, records ...[]string) *types.Table {
	t.Helper()
	table, err := conv.buildTable(&tabular.Sheet{Header: header, Records: records})
	require.NoError(t, err)
	return table
}

func TestBuildTableNulls(t *testing.T) {
	conv := New(types.DefaultConverterConfig(), nil)
	table := newTestTable(t, conv,
		[]string{"a", "b", "c", "d", "e", "f"},
		[]string{"", "  ", "nan", "NULL", " x ", "none"},
	)

	cells := table.Rows[0].Cells
	assert.True(t, cells[0].IsNull())
	assert.True(t, cells[1].IsNull())
	assert.True(t, cells[2].IsNull())
	assert.True(t, cells[3].IsNull())
	assert.Equal(t, types.Text("x"), cells[4])
	assert.Equal(t, types.Text("none"), cells[5], "null tokens are case-sensitive")
	assert.Equal(t, 2, table.Rows[0].Line)
}

func TestBuildTableCustomNullTokens(t *testing.T) {
	cfg := types.DefaultConverterConfig()
	cfg.NullTokens = []string{"-"}
	conv := New(cfg, nil)
	table := newTestTable(t, conv, []string{"a", "b"}, []string{"-", "nan"})

	assert.True(t, table.Rows[0].Cells[0].IsNull())
	assert.Equal(t, types.Text("nan"), table.Rows[0].Cells[1])
}

func TestIdentifierColumnsKeepLiteralText(t *testing.T) {
	conv := New(types.DefaultConverterConfig(), nil)
	table := newTestTable(t, conv,
		[]string{"연월일", "문제번호", "정답"},
		[]string{"020240101", "5", "03"},
	)
	conv.transform(table, &Result{})

	assert.Equal(t, []types.Cell{types.Text("020240101"), types.Text("5"), types.Text("03")}, table.Rows[0].Cells)
}

func TestTransformCommaSubstitution(t *testing.T) {
	conv := New(types.DefaultConverterConfig(), nil)
	table := newTestTable(t, conv,
		[]string{"문제내용", "해설", "보기", "선택지1", "정답", "기타"},
		[]string{"a,b,c", "", "x,y", "1,2", "1,2", "k,v"},
	)
	conv.transform(table, &Result{})

	cells := table.Rows[0].Cells
	assert.Equal(t, types.Text("a_b_c"), cells[0])
	assert.True(t, cells[1].IsNull(), "null stays null")
	assert.Equal(t, types.Text("x_y"), cells[2])
	assert.Equal(t, types.Text("1_2"), cells[3])
	assert.Equal(t, types.Text("1,2"), cells[4], "answer column is not rewritten")
	assert.Equal(t, types.Text("k,v"), cells[5], "unrecognized columns are not rewritten")
}

func TestTransformImagePlaceholders(t *testing.T) {
	header := []string{"연월일", "문제번호", "보기", "선택지1", "선택지3", "선택지"}
	tests := []struct {
		name         string
		record       []string
		want         []types.Cell
		wantWarnings []Warning
	}{
		{
			name:   "all placeholders resolved",
			record: []string{"20240101", "5", "image", "IMAGE", " Image ", "image"},
			want: []types.Cell{
				types.Text("20240101"), types.Text("5"),
				types.Text("images/20240101-5-view.png"),
				types.Text("images/20240101-5-1.png"),
				types.Text("images/20240101-5-3.png"),
				types.Text("images/20240101-5-0.png"),
			},
		},
		{
			name:   "non-marker text is only comma-substituted",
			record: []string{"20240101", "5", "images", "a,b", "imagery", ""},
			want: []types.Cell{
				types.Text("20240101"), types.Text("5"),
				types.Text("images"), types.Text("a_b"), types.Text("imagery"), types.Null(),
			},
		},
		{
			name:   "missing date leaves marker",
			record: []string{"", "5", "image", "x", "image", ""},
			want: []types.Cell{
				types.Null(), types.Text("5"),
				types.Text("image"), types.Text("x"), types.Text("image"), types.Null(),
			},
			wantWarnings: []Warning{
				{Line: 2, Column: "보기", Missing: []string{"연월일"}, QuestionNumber: "5"},
				{Line: 2, Column: "선택지3", Missing: []string{"연월일"}, QuestionNumber: "5"},
			},
		},
		{
			name:   "nan question number in any case is rejected",
			record: []string{"20240101", "NAN", "x", "image", "y", ""},
			want: []types.Cell{
				types.Text("20240101"), types.Text("NAN"),
				types.Text("x"), types.Text("image"), types.Text("y"), types.Null(),
			},
			wantWarnings: []Warning{
				{Line: 2, Column: "선택지1", Missing: []string{"문제번호"}, Date: "20240101", QuestionNumber: "NAN"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := New(types.DefaultConverterConfig(), nil)
			table := newTestTable(t, conv, header, tt.record)
			res := &Result{}
			conv.transform(table, res)

			assert.Equal(t, tt.want, table.Rows[0].Cells)
			assert.Equal(t, tt.wantWarnings, res.Warnings)
			assert.Equal(t, countPaths(tt.want), res.ImagePaths)
		})
	}
}

func TestTransformWithoutIdentifierColumns(t *testing.T) {
	conv := New(types.DefaultConverterConfig(), nil)
	table := newTestTable(t, conv, []string{"선택지2"}, []string{"image"})
	res := &Result{}
	conv.transform(table, res)

	assert.Equal(t, types.Text("image"), table.Rows[0].Cells[0])
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, []string{"연월일", "문제번호"}, res.Warnings[0].Missing)
	assert.Contains(t, res.Warnings[0].String(), "연월일 and 문제번호")
}

func TestTransformCustomConfig(t *testing.T) {
	cfg := types.DefaultConverterConfig()
	cfg.ImageMarker = "[img]"
	cfg.CommaReplacement = ";"
	cfg.ImageDir = "static/quiz"
	cfg.Columns = types.ColumnNames{
		Date:           "date",
		QuestionNumber: "no",
		Prompt:         "prompt",
		OptionPrefix:   "option",
	}
	conv := New(cfg, nil)
	table := newTestTable(t, conv,
		[]string{"date", "no", "prompt", "option_2"},
		[]string{"2023", "1", "x,y", "[IMG]"},
	)
	conv.transform(table, &Result{})

	assert.Equal(t, types.Text("x;y"), table.Rows[0].Cells[2])
	assert.Equal(t, types.Text("static/quiz/2023-1-2.png"), table.Rows[0].Cells[3])
}

func TestValidateFieldCounts(t *testing.T) {
	sheet := &tabular.Sheet{
		Header:  []string{"a", "b"},
		Records: [][]string{{"1", "2"}, {"3", "4"}, {"5", "6", "7"}},
	}
	err := validateFieldCounts(sheet)
	assert.Equal(t, &SchemaError{Line: 4, Expected: 2, Actual: 3, Content: "5,6,7"}, err)

	sheet.Records = sheet.Records[:2]
	assert.NoError(t, validateFieldCounts(sheet))
}

func TestValidateFieldCountsUsesPhysicalLines(t *testing.T) {
	tests := []struct {
		name  string
		sheet *tabular.Sheet
		want  *SchemaError
	}{
		{
			name: "blank line",
			sheet: &tabular.Sheet{
				Header:  []string{"a", "b"},
				Records: [][]string{{}, {"1", "2"}, {"3"}},
				Lines:   []int{2, 3, 4},
			},
			want: &SchemaError{Line: 2, Expected: 2, Actual: 0, Content: ""},
		},
		{
			name: "row after a multiline field",
			sheet: &tabular.Sheet{
				Header:  []string{"a", "b"},
				Records: [][]string{{"x\ny", "1"}, {"3"}},
				Lines:   []int{2, 4},
			},
			want: &SchemaError{Line: 4, Expected: 2, Actual: 1, Content: "3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateFieldCounts(tt.sheet))
		})
	}
}

func TestBuildTableKeepsPhysicalLines(t *testing.T) {
	conv := New(types.DefaultConverterConfig(), nil)
	table, err := conv.buildTable(&tabular.Sheet{
		Header:  []string{"a", "b"},
		Records: [][]string{{"x\ny", "1"}, {"3", "4"}},
		Lines:   []int{2, 4},
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 2, table.Rows[0].Line)
	assert.Equal(t, 4, table.Rows[1].Line)
}

func countPaths(cells []types.Cell) int {
	n := 0
	for _, c := range cells {
		if c.Valid && len(c.Value) > 7 && c.Value[:7] == "images/" {
			n++
		}
	}
	return n
}
