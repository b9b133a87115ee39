package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Quote is a motivational line shown on the tracker dashboard.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

type QuotesManager struct {
	Quotes         []*Quote
	AuthorsQuotes  map[string][]*Quote
	CategoryQuotes map[string][]*Quote
}

// NewQuoteManager reads the QUOTE;AUTHOR;CATEGORY csv.
func NewQuoteManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{}
	qm.AuthorsQuotes = make(map[string][]*Quote)
	qm.CategoryQuotes = make(map[string][]*Quote)

	log.Println("reading quotes CSV ...")

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		quote := &Quote{
			Text:     record[0],
			Author:   record[1],
			Category: record[2],
		}
		qm.Quotes = append(qm.Quotes, quote)

		qm.AuthorsQuotes[quote.Author] = append(qm.AuthorsQuotes[quote.Author], quote)
		qm.CategoryQuotes[quote.Category] = append(qm.CategoryQuotes[quote.Category], quote)
	}

	log.Printf("quotes CSV read %d quotes", len(qm.Quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	index := rand.Float64() * float64(len(qm.Quotes))
	return qm.Quotes[int(index)]
}
