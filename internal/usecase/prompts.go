package usecase

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// extractionPrompt instructs the vision call to return nothing but the
// structured extraction object.
var extractionPrompt = strings.TrimSpace(dedent.Dedent(`
	Identify the product shown in the attached photo(s) and return ONLY the
	following JSON object, with no extra text before or after it:
	{
	  "name": string, "model": string,
	  "jan": string,  "upc": string,
	  "release_date": string,
	  "msrp_currency": string, "msrp": number,
	  "confidence": number, "notes": string
	}
	Constraints: jan/upc must contain digits only. release_date is one of
	YYYY, YYYY-MM or YYYY-MM-DD. Use an empty string or 0 for unknown values.
`))

// enrichmentSystemPrompt pins the researcher persona to JSON-only output
// with every monetary value in Japanese yen.
var enrichmentSystemPrompt = strings.TrimSpace(dedent.Dedent(`
	You are a product researcher writing in Japanese. Output ONLY the JSON
	object matching the schema in the user message. Every monetary amount
	must be in Japanese yen (JPY) only, formatted with thousands separators
	and a trailing 円 (example: 35,200円). Always include the official list
	price.
`))

// enrichmentPromptTemplate carries the two narrative fields plus release
// and list-price data for the subject derived from extraction.
var enrichmentPromptTemplate = strings.TrimSpace(dedent.Dedent(`
	Research the subject below and return ONLY a JSON object with these
	fields:
	{
	  "detail_description": string,
	  "market_overview": string,
	  "official_release": string,
	  "official_msrp_jpy": number
	}
	detail_description: a Japanese description of at most 200 characters
	including details such as alcohol content, capacity, first release year
	and the official price in yen, where applicable.
	market_overview: the going secondhand/used market prices (Mercari,
	Yahoo Auctions, online retail) as prose, all amounts in yen.
	official_release: for example "1992" or "1992-10".
	official_msrp_jpy: the official list price in yen as a number, 0 if
	unknown.

	Subject: %s
`))

func enrichmentPrompt(query string) string {
	return fmt.Sprintf(enrichmentPromptTemplate, query)
}
