package dictionaryapi

// WordResponse holds a single entry of an API response
type WordResponse struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic"`
	Phonetics  []Phonetic `json:"phonetics"`
	Origin     string     `json:"origin"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls"`
}

// Phonetic holds pronunciation text and an optional audio URL
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition holds a single definition of a word
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// errorResponse is the object returned instead of an entries list
// when the API has nothing for a word
type errorResponse struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}
