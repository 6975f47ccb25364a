package service_test

import (
	"nobel-stats/app/models"
	service "nobel-stats/app/service/statistics"
)

func prize(year, category string, ids ...string) models.Prize {
	p := models.Prize{Year: year, Category: category}
	for _, id := range ids {
		p.Laureates = append(p.Laureates, models.PrizeLaureate{ID: id, Share: "1"})
	}
	return p
}

func fixturePrizes() *models.PrizeDataset {
	return &models.PrizeDataset{Prizes: []models.Prize{
		prize("1921", "physics", "1"),
		prize("1903", "physics", "4", "5", "6"),
		prize("1911", "chemistry", "6"),
		prize("1917", "peace", "482"),
		prize("1918", "physics", "10"),
		prize("1954", "chemistry", "100"),
		prize("1962", "peace", "100"),
		prize("1908", "chemistry", "200"),
		prize("2024", "economics"),
		prize("1944", "peace", "482"),
	}}
}

func fixtureLaureates() *models.LaureateDataset {
	return &models.LaureateDataset{Laureates: []models.Laureate{
		{ID: "1", Firstname: "Albert", Surname: "Einstein", Born: "1879-03-14", BornCountry: "Germany", Prizes: []models.LaureatePrize{
			{Year: "1921", Category: "physics", Motivation: `"for his services to Theoretical Physics"`},
		}},
		{ID: "6", Firstname: "Marie", Surname: "Curie", Born: "1867-11-07", BornCountry: "Russian Empire (now Poland)", Prizes: []models.LaureatePrize{
			{Year: "1903", Category: "physics", Motivation: `"in recognition of the extraordinary services they have rendered by their joint researches"`},
			{Year: "1911", Category: "chemistry", Motivation: `"in recognition of her services to the advancement of chemistry"`},
		}},
		{ID: "4", Firstname: "Henri", Surname: "Becquerel", Born: "1852-12-15", BornCountry: "France", Prizes: []models.LaureatePrize{
			{Year: "1903", Category: "physics", Motivation: `"for his discovery of spontaneous radioactivity"`},
		}},
		{ID: "5", Firstname: "Pierre", Surname: "Curie", Born: "1859-05-15", BornCountry: "France", Prizes: []models.LaureatePrize{
			{Year: "1903", Category: "physics", Motivation: `"for their joint researches on the radiation phenomena"`},
		}},
		{ID: "482", Firstname: "International Committee of the Red Cross", Born: "0000-00-00", Prizes: []models.LaureatePrize{
			{Year: "1917", Category: "peace"},
			{Year: "1944", Category: "peace"},
		}},
		{ID: "10", Firstname: "Max", Surname: "Planck", Born: "1858-04-23", BornCountry: "Germany", Prizes: []models.LaureatePrize{
			{Year: "1918", Category: "physics", Motivation: `"for his discovery of energy quanta"`},
		}},
		{ID: "100", Firstname: "Linus", Surname: "Pauling", Born: "1901-02-28", BornCountry: "USA", Prizes: []models.LaureatePrize{
			{Year: "1954", Category: "chemistry", Motivation: `"for his research into the nature of the chemical bond"`},
			{Year: "1962", Category: "peace"},
		}},
		{ID: "200", Firstname: "Ernest", Surname: "Rutherford", Born: "1871-08-30", BornCountry: "New Zealand", Prizes: []models.LaureatePrize{
			{Year: "1908", Category: "chemistry", Motivation: `"for his investigations into the disintegration of the elements"`},
		}},
	}}
}

func fixtureSession() *service.Session {
	s, err := service.NewSession(fixturePrizes(), fixtureLaureates())
	if err != nil {
		panic(err)
	}
	return s
}

type staticSessions struct {
	session *service.Session
}

func (s staticSessions) Session() *service.Session { return s.session }
