package gazetteer

// Australian cities and regional centers mapped to their state.
var cityToState = map[string]string{
	// New South Wales
	"sydney": "NSW", "newcastle": "NSW", "wollongong": "NSW", "central coast": "NSW",
	"maitland": "NSW", "wagga wagga": "NSW", "albury": "NSW", "port macquarie": "NSW",
	"tamworth": "NSW", "orange": "NSW", "dubbo": "NSW", "bathurst": "NSW",
	"lismore": "NSW", "nowra": "NSW", "north sydney": "NSW", "parramatta": "NSW",

	// Victoria
	"melbourne": "VIC", "geelong": "VIC", "ballarat": "VIC", "bendigo": "VIC",
	"shepparton": "VIC", "mildura": "VIC", "warrnambool": "VIC", "wodonga": "VIC",
	"traralgon": "VIC", "horsham": "VIC",

	// Queensland
	"brisbane": "QLD", "gold coast": "QLD", "sunshine coast": "QLD", "townsville": "QLD",
	"cairns": "QLD", "toowoomba": "QLD", "mackay": "QLD", "rockhampton": "QLD",
	"bundaberg": "QLD", "hervey bay": "QLD", "gladstone": "QLD", "ipswich": "QLD",

	// South Australia
	"adelaide": "SA", "mount gambier": "SA", "whyalla": "SA", "port lincoln": "SA",
	"port augusta": "SA", "murray bridge": "SA",

	// Western Australia
	"perth": "WA", "mandurah": "WA", "bunbury": "WA", "geraldton": "WA",
	"albany": "WA", "kalgoorlie": "WA", "busselton": "WA", "rockingham": "WA",

	// Tasmania
	"hobart": "TAS", "launceston": "TAS", "devonport": "TAS", "burnie": "TAS",

	// Northern Territory
	"darwin": "NT", "alice springs": "NT", "palmerston": "NT",

	// Australian Capital Territory
	"canberra": "ACT",
}

// State/territory names and abbreviations to filter out of location lists.
var stateNames = []string{
	"new south wales", "nsw", "victoria", "vic", "queensland", "qld",
	"south australia", "sa", "western australia", "wa", "tasmania", "tas",
	"northern territory", "nt", "australian capital territory", "act",
	"australia", "au",
}

// Regional descriptors that name an area rather than a city.
var nonCityPatterns = []string{
	`cbd and inner suburbs`,
	`inner suburbs`,
	`western suburbs`,
	`eastern suburbs`,
	`northern suburbs`,
	`southern suburbs`,
	`metro`,
	`metropolitan`,
	`region`,
	`area`,
	`greater\s+\w+`,
}

// The 8 state/territory abbreviations, matched as tokens inside strings
// like "Brisbane QLD".
var stateAbbrevs = []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "NT", "ACT"}

// Default returns the gazetteer built from the packaged Australian data.
func Default() *Gazetteer {
	g, err := New(cityToState, stateNames, nonCityPatterns, stateAbbrevs)
	if err != nil {
		// The packaged patterns are constants; a compile failure is a bug.
		panic(err)
	}
	return g
}
