package stats

import "vacstats/internal/types"

func (s *UnitTestSuite) TestUpsertAppendsNewDate() {
	doc := Document{{Date: "2024-01-01", VacanciesCount: 5}}
	doc = doc.Upsert("2024-01-02", 7)

	s.Len(doc, 2)
	n, ok := doc.Lookup("2024-01-01")
	s.True(ok)
	s.Equal(5, n)
	n, ok = doc.Lookup("2024-01-02")
	s.True(ok)
	s.Equal(7, n)
}

func (s *UnitTestSuite) TestUpsertReplacesExistingDate() {
	doc := Document{
		{Date: "2024-01-01", VacanciesCount: 5},
		{Date: "2024-01-02", VacanciesCount: 7},
	}
	doc = doc.Upsert("2024-01-02", 9)

	s.Len(doc, 2)
	n, _ := doc.Lookup("2024-01-02")
	s.Equal(9, n)
	n, _ = doc.Lookup("2024-01-01")
	s.Equal(5, n)
}

func (s *UnitTestSuite) TestUpsertIdempotent() {
	doc := Document{{Date: "2024-01-01", VacanciesCount: 5}}
	once := doc.Upsert("2024-01-02", 7)
	twice := once.Upsert("2024-01-02", 7)
	s.Equal(once, twice)
}

func (s *UnitTestSuite) TestUpsertIntoEmptyDocument() {
	var doc Document
	doc = doc.Upsert("2024-01-02", 7)
	s.Equal(Document{{Date: "2024-01-02", VacanciesCount: 7}}, doc)
}

func (s *UnitTestSuite) TestSerializeParseRoundTrip() {
	doc := Document{
		{Date: "2024-01-01", VacanciesCount: 5},
		{Date: "2024-01-02", VacanciesCount: 7},
		{Date: "2023-12-31", VacanciesCount: 0},
	}
	raw, err := doc.Serialize()
	s.NoError(err)

	back, err := Parse(raw)
	s.NoError(err)
	s.ElementsMatch(doc, back)
}

func (s *UnitTestSuite) TestSerializeEmptyDocumentIsArray() {
	raw, err := Document(nil).Serialize()
	s.NoError(err)
	s.Equal("[]", string(raw))

	back, err := Parse(raw)
	s.NoError(err)
	s.Empty(back)
}

func (s *UnitTestSuite) TestParseRejectsMalformedJSON() {
	_, err := Parse([]byte(`{"date": "2024-`))
	s.ErrorIs(err, types.ErrCorruptDocument)
}

func (s *UnitTestSuite) TestParseRejectsBadDate() {
	_, err := Parse([]byte(`[{"date":"01/02/2024","vacanciesCount":7}]`))
	s.ErrorIs(err, types.ErrCorruptDocument)
}

func (s *UnitTestSuite) TestParseRejectsNegativeCount() {
	_, err := Parse([]byte(`[{"date":"2024-01-02","vacanciesCount":-1}]`))
	s.ErrorIs(err, types.ErrCorruptDocument)
}

func (s *UnitTestSuite) TestParseRejectsDuplicateDates() {
	_, err := Parse([]byte(`[
		{"date":"2024-01-02","vacanciesCount":7},
		{"date":"2024-01-02","vacanciesCount":9}
	]`))
	s.ErrorIs(err, types.ErrCorruptDocument)
}

func (s *UnitTestSuite) TestParseAcceptsPrettyPrintedDocument() {
	raw := []byte("[\n  {\n    \"date\": \"2024-01-01\",\n    \"vacanciesCount\": 5\n  }\n]")
	doc, err := Parse(raw)
	s.NoError(err)
	s.Equal(Document{{Date: "2024-01-01", VacanciesCount: 5}}, doc)
}
