package news

import "strings"

// Category selects which vocabulary and boosted search query drive
// relevance scoring.
type Category string

const (
	CategoryActors Category = "actors"
	CategoryMovies Category = "movies"
)

// Keywords that indicate actor/celebrity news
var actorKeywords = []string{
	"actor", "actress", "celebrity", "star", "cast", "starring", "role",
	"performance", "oscar", "emmy", "golden globe", "award", "red carpet",
	"hollywood", "bollywood", "premiere", "interview", "tom hanks", "tom cruise",
	"leonardo dicaprio", "brad pitt", "johnny depp", "keanu reeves", "ryan gosling",
	"timothee chalamet", "zendaya", "margot robbie", "scarlett johansson",
	"jennifer lawrence", "anne hathaway", "emma stone", "florence pugh",
	"dwayne johnson", "chris hemsworth", "chris evans", "robert downey",
	"samuel jackson", "morgan freeman", "denzel washington", "will smith",
	"meryl streep", "cate blanchett", "viola davis", "sydney sweeney",
	"jacob elordi", "pedro pascal", "austin butler", "anya taylor-joy",
	"jason momoa", "gal gadot", "henry cavill", "benedict cumberbatch",
	"entertainment", "celebrity news", "showbiz", "film star",
}

// Keywords that indicate movie news
var movieKeywords = []string{
	"movie", "film", "cinema", "box office", "blockbuster", "sequel", "prequel",
	"franchise", "trailer", "release date", "netflix", "disney", "marvel", "dc",
	"warner bros", "paramount", "universal", "sony pictures", "amazon prime",
	"hbo max", "streaming", "theatrical", "imax", "screen", "director",
	"screenplay", "production", "filming", "post-production", "vfx",
	"box office hit", "weekend gross", "opening weekend", "billion dollar",
	"avengers", "spider-man", "batman", "superman", "star wars", "jurassic",
	"fast furious", "mission impossible", "james bond", "harry potter",
	"lord of the rings", "avatar", "barbie", "oppenheimer", "dune",
	"horror movie", "comedy film", "action movie", "drama film", "thriller",
	"animated film", "pixar", "dreamworks", "studio ghibli", "a24",
	"sundance", "cannes", "toronto film festival", "venice film festival",
	"academy awards", "oscars", "critics choice", "bafta", "sag awards",
}

// Keywords to EXCLUDE - these indicate non-entertainment news
var blacklistKeywords = []string{
	"politics", "election", "vote", "senator", "congress", "parliament",
	"president biden", "president trump", "republican", "democrat", "political",
	"cryptocurrency", "crypto", "bitcoin", "ethereum", "nft", "blockchain",
	"stock market", "stocks", "trading", "investment fund", "hedge fund",
	"sports betting", "gambling", "casino", "lottery",
	"covid", "pandemic", "vaccine", "virus", "outbreak",
	"murder", "killed", "shooting", "crime scene", "arrested", "prison",
	"war", "military", "troops", "invasion", "missile", "bombing",
	"lawsuit against", "sued for", "legal battle", "court case",
	"real estate", "mortgage", "housing market", "property prices",
	"weather", "hurricane", "earthquake", "flood", "wildfire",
	"tech stocks", "ipo", "startup funding", "venture capital",
	"football", "basketball", "baseball", "soccer", "nfl", "nba", "mlb",
	"tennis", "golf", "olympics", "world cup", "super bowl",
}

// Trusted entertainment news sources get a score bonus
var trustedSources = []string{
	"entertainment weekly", "variety", "hollywood reporter", "deadline",
	"screen rant", "collider", "indiewire", "ew.com", "e! news", "people",
	"tmz", "buzzfeed", "vulture", "the wrap", "cinemablend", "gamespot",
	"ign", "empire", "total film", "movie web", "slashfilm", "film school rejects",
}

// Keywords returns the vocabulary active for the category.
func (c Category) Keywords() []string {
	if c == CategoryActors {
		return actorKeywords
	}
	return movieKeywords
}

// Query returns the boosted full-text search query for the category.
func (c Category) Query() string {
	if c == CategoryActors {
		return `("actor" OR "actress" OR "celebrity" OR "Hollywood star" OR "movie star") AND (film OR movie OR premiere OR award OR interview)`
	}
	return `("movie" OR "film" OR "cinema" OR "box office" OR "blockbuster") AND (release OR trailer OR review OR premiere OR streaming)`
}

// containsKeyword matches keywords as raw case-insensitive substrings,
// with no word boundaries. "war" matching inside "warner" is accepted
// behavior; the vocabularies are tuned around it.
func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// isTrustedSource checks the outlet name against known entertainment
// press substrings.
func isTrustedSource(sourceName string) bool {
	lower := strings.ToLower(sourceName)
	for _, source := range trustedSources {
		if strings.Contains(lower, source) {
			return true
		}
	}
	return false
}
