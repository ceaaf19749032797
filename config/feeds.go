package config

import (
	"sort"
	"strings"

	"github.com/scipunch/newswire/fetcher/types"
)

// Catalog maps a category name to its feeds
type Catalog map[string][]types.FeedSource

// CategoryOrder is the order categories are visited when every category is fetched
var CategoryOrder = []string{"news", "opinions", "videos", "podcasts", "sports", "tech", "entertainment", "business", "lifestyle", "culture"}

// DefaultCatalog returns a fresh copy of the built-in feed list
func DefaultCatalog() Catalog {
	return Catalog{
		"news": {
			// Major News Networks
			{URL: "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml", Label: "New York Times"},
			{URL: "https://feeds.bbci.co.uk/news/rss.xml", Label: "BBC News"},
			{URL: "https://www.theguardian.com/world/rss", Label: "The Guardian"},
			{URL: "http://rss.cnn.com/rss/cnn_topstories.rss", Label: "CNN"},
			{URL: "https://feeds.reuters.com/reuters/topNews", Label: "Reuters"},
			{URL: "https://feeds.npr.org/1001/rss.xml", Label: "NPR"},
			{URL: "https://www.politico.com/rss/politicopicks.xml", Label: "Politico"},
			{URL: "https://feeds.washingtonpost.com/rss/national", Label: "Washington Post"},
			{URL: "https://www.latimes.com/world-nation/rss2.0.xml", Label: "LA Times"},
			{URL: "http://feeds.foxnews.com/foxnews/latest", Label: "Fox News"},
			{URL: "https://rss.nytimes.com/services/xml/rss/nyt/US.xml", Label: "New York Times US"},
			{URL: "https://www.theguardian.com/us-news/rss", Label: "The Guardian US"},
			// International News Sources (Global Expansion)
			{URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Label: "BBC World"},
			{URL: "https://www.aljazeera.com/xml/rss/all.xml", Label: "Al Jazeera"},
			{URL: "https://rss.dw.com/xml/rss-en-all", Label: "Deutsche Welle"},
			{URL: "https://www.france24.com/en/rss", Label: "France 24"},
			{URL: "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml", Label: "Channel NewsAsia"},
			{URL: "https://www.scmp.com/rss/91/feed", Label: "South China Morning Post"},
			{URL: "https://timesofindia.indiatimes.com/rssfeedstopstories.cms", Label: "Times of India"},
			{URL: "https://www.thestar.com.my/rss/News/Latest/", Label: "The Star Malaysia"},
			{URL: "https://www.abc.net.au/news/feed/51120/rss.xml", Label: "ABC News Australia"},
			{URL: "https://www.cbc.ca/cmlink/rss-topstories", Label: "CBC News"},
			// Additional US News
			{URL: "https://feeds.nbcnews.com/nbcnews/public/news", Label: "NBC News"},
			{URL: "https://feeds.abcnews.com/abcnews/topstories", Label: "ABC News"},
			{URL: "https://www.cbsnews.com/latest/rss/main", Label: "CBS News"},
			{URL: "https://www.usatoday.com/rss/", Label: "USA Today"},
			{URL: "https://nypost.com/feed/", Label: "New York Post"},
			{URL: "https://apnews.com/apf-topnews", Label: "Associated Press"},
			// RSS APP feeds (for more niche topics)
			{URL: "https://rss.app/feeds/tTWnpqRL1kY8uxZD.xml", Label: "CNN"},
			{URL: "https://rss.app/feeds/_iIjbt3XTnFFpU0Cv.xml", Label: "The Latest"},
		},
		"opinions": {
			{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Opinion.xml", Label: "New York Times Opinion"},
			{URL: "https://www.theguardian.com/uk/commentisfree/rss", Label: "The Guardian Opinion"},
			{URL: "https://www.theguardian.com/us/commentisfree/rss", Label: "The Guardian US Opinion"},
			{URL: "https://www.latimes.com/opinion/rss2.0.xml", Label: "LA Times Opinion"},
			// RSS APP feeds (for more niche topics)
			{URL: "https://rss.app/feeds/wGtHhwQaOwup8JQs.xml", Label: "New York Post"},
			{URL: "https://rss.app/feeds/_iIjbt3XTnFFpU0Cv.xml", Label: "The Latest"},
		},
		"videos": {
			// YouTube News Channels
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCupvZG-5ko_eiXAupbDfxWw", Label: "CNN"},
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCeY0bbntWzzVIaj2z3QigXg", Label: "NBC News"},
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCXIJgqnII2ZOINSWNOGFThA", Label: "Fox News"},
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCBi2mrWuNuyYy4gbM6fU18Q", Label: "ABC News"},
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UC16niRr50-MSBwiO3YDb3RA", Label: "BBC News"},
			{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCaXkIU1QidjPwiAYu6GcHjg", Label: "MSNBC"},
			// RSS APP feeds
			{URL: "https://rss.app/feeds/wGtHhwQaOwup8JQs.xml", Label: "New York Post"},
			{URL: "https://rss.app/feeds/_iIjbt3XTnFFpU0Cv.xml", Label: "The Latest"},
		},
		"podcasts": {
			// News & Politics Podcasts
			{URL: "https://feeds.npr.org/500005/podcast.xml", Label: "NPR Politics"},
			{URL: "https://feeds.megaphone.fm/NYT8938532588", Label: "The Daily (NYT)"},
			{URL: "https://feeds.megaphone.fm/WWO3519750118", Label: "Pod Save America"},
			{URL: "https://feeds.simplecast.com/54nAGcIl", Label: "The Ezra Klein Show"},
			{URL: "https://feeds.npr.org/510318/podcast.xml", Label: "NPR Up First"},
			{URL: "https://feeds.megaphone.fm/WAPO5439518155", Label: "Washington Post"},
			{URL: "https://feeds.megaphone.fm/WSJ9463786025", Label: "WSJ What's News"},
			{URL: "https://feeds.megaphone.fm/ADL9452555852", Label: "The Ben Shapiro Show"},
			{URL: "https://feeds.megaphone.fm/newshour", Label: "PBS NewsHour"},
			{URL: "https://www.omnycontent.com/d/playlist/e73c998e-6e60-432f-8610-ae210140c5b1/a91018a4-ea4f-4130-bf55-ae270180c327/44710ecc-10bb-48d1-93c7-ae270180c33e/podcast.rss", Label: "Morning Joe"},
			{URL: "https://feeds.megaphone.fm/VMP7924054000", Label: "Pod Save the World"},
			{URL: "https://feeds.megaphone.fm/FOXN2895050347", Label: "Fox News"},
			// Technology & Business Podcasts
			{URL: "https://feeds.megaphone.fm/HSW8935723597", Label: "TED Tech"},
			{URL: "https://feeds.simplecast.com/XA_851k3", Label: "Reply All"},
			{URL: "https://lexfridman.com/feed/podcast/", Label: "Lex Fridman"},
			{URL: "https://feeds.megaphone.fm/recodedecode", Label: "Recode Decode"},
			{URL: "https://feeds.simplecast.com/qm_9xx0g", Label: "Acquired"},
			{URL: "https://feeds.megaphone.fm/ROOSTER7199250968", Label: "a16z Podcast"},
			{URL: "https://feeds.simplecast.com/4T39_jAj", Label: "Invest Like the Best"},
			{URL: "https://feeds.simplecast.com/wgl4xEgL", Label: "Masters of Scale"},
			{URL: "https://rss.art19.com/freakonomics-radio", Label: "Freakonomics"},
			{URL: "https://feeds.megaphone.fm/marketsnacks-daily", Label: "The Best One Yet"},
			{URL: "https://feeds.megaphone.fm/BINGE9775291795", Label: "How I Built This"},
			{URL: "https://feeds.pacific-content.com/mogul", Label: "Business Wars"},
			// Culture & Entertainment Podcasts
			{URL: "https://feeds.simplecast.com/rpXNNhRZ", Label: "Fresh Air"},
			{URL: "https://feeds.npr.org/510298/podcast.xml", Label: "TED Radio Hour"},
			{URL: "https://feeds.megaphone.fm/ROOSTER2072428631", Label: "WTF Marc Maron"},
			{URL: "https://feeds.simplecast.com/l2i9YnTd", Label: "Conan O'Brien"},
			{URL: "https://www.omnycontent.com/d/playlist/aaea4e69-af51-495e-afc9-a9760146922b/14a43378-edb2-49be-8511-ab0d000a7030/d1b9612f-bb1b-4b85-9c0e-ab0d000a7038/podcast.rss", Label: "Armchair Expert"},
			{URL: "https://feeds.simplecast.com/wjQvV1gf", Label: "Smartless"},
			{URL: "https://rss.art19.com/stuff-you-should-know", Label: "Stuff You Should Know"},
			{URL: "https://feeds.simplecast.com/Nn6fjnB0", Label: "Radiolab"},
			{URL: "https://www.omnycontent.com/d/playlist/aaea4e69-af51-495e-afc9-a9760146922b/edc76a46-3151-4d67-b489-ab0500afc990/f51f3e9b-9488-4b6e-8f2b-ab0500afcb98/podcast.rss", Label: "The Bill Simmons"},
			{URL: "https://feeds.acast.com/public/shows/the-joe-rogan-experience", Label: "Joe Rogan Experience"},
			// Science & Education Podcasts
			{URL: "https://feeds.megaphone.fm/sciencevs", Label: "Science Vs"},
			{URL: "https://www.omnycontent.com/d/playlist/6c78df20-eafc-40a8-beeb-a82f00f2f97f/abac18c5-df1a-4e2e-9980-aead01005895/1aee9784-87c3-4a18-88bd-aead0100589e/podcast.rss", Label: "Hidden Brain"},
			{URL: "https://feeds.megaphone.fm/INFOROCKET4046796097", Label: "Stuff To Blow Your Mind"},
			{URL: "https://feeds.simplecast.com/Y2Y_sofX", Label: "Short Wave"},
			{URL: "https://feeds.megaphone.fm/sciencefriday", Label: "Science Friday"},
			{URL: "https://www.omnycontent.com/d/playlist/aaea4e69-af51-495e-afc9-a9760146922b/0dc6ed37-fbc7-4b36-9d7f-ab810177c2bb/dbcf2494-9783-4a10-850a-ab810177c2c6/podcast.rss", Label: "Ologies"},
			// True Crime & History Podcasts
			{URL: "https://feeds.simplecast.com/tOjJ6yCZ", Label: "Criminal"},
			{URL: "https://feeds.megaphone.fm/EMPN6330802945", Label: "My Favorite Murder"},
			{URL: "https://feeds.megaphone.fm/SU6174937661", Label: "Serial"},
			{URL: "https://www.omnycontent.com/d/playlist/e73c998e-6e60-432f-8610-ae210140c5b1/a91018a4-ea4f-4130-bf55-ae270180c327/44710ecc-10bb-48d1-93c7-ae270180c33e/podcast.rss", Label: "Hardcore History"},
			{URL: "https://rss.art19.com/revisionist-history", Label: "Revisionist History"},
			// Sports Podcasts
			{URL: "https://feeds.megaphone.fm/ESP5765452710", Label: "ESPN Daily"},
			{URL: "https://feeds.megaphone.fm/ESP4816647903", Label: "Pardon My Take"},
			{URL: "https://omnycontent.com/d/playlist/885bb800-15a4-4e4c-9cf6-a73c00f01729/3c127de2-bb99-43d8-9e14-aa3f0031bb0c/2edb23a4-67e9-4838-9aaa-aa3f0031bb0f/podcast.rss", Label: "The Ringer NBA"},
			{URL: "https://feeds.megaphone.fm/ESP6891740883", Label: "Fantasy Football"},
			// Health & Wellness Podcasts
			{URL: "https://feeds.megaphone.fm/HSW5985171007", Label: "The doctor's Farmacy"},
			{URL: "https://feeds.simplecast.com/_AqM7d43", Label: "Feel Better, Live More"},
			{URL: "https://rss.art19.com/huberman-lab", Label: "Huberman Lab"},
			{URL: "https://www.omnycontent.com/d/playlist/ccfe4372-0257-426c-8c45-aa8e01826bb2/a40daac5-7c4d-4fa1-96f2-aae900f4ad5d/17a5ba5b-46e0-40c8-a7e8-aae900f5126c/podcast.rss", Label: "On Purpose"},
			// Comedy Podcasts
			{URL: "https://feeds.simplecast.com/XOlG2ZQl", Label: "Smartless"},
			{URL: "https://rss.art19.com/my-dad-wrote-a-porno", Label: "My Dad Wrote A Porno"},
			{URL: "https://feeds.megaphone.fm/comedybangbang", Label: "Comedy Bang Bang"},
			// RSS APP feeds
			{URL: "https://rss.app/feeds/wGtHhwQaOwup8JQs.xml", Label: "New York Post"},
			{URL: "https://rss.app/feeds/_iIjbt3XTnFFpU0Cv.xml", Label: "The Latest"},
		},
		"sports": {
			// Major Sports Networks
			{URL: "https://www.espn.com/espn/rss/news", Label: "ESPN"},
			{URL: "https://www.si.com/rss/si_topstories.rss", Label: "Sports Illustrated"},
			{URL: "https://www.cbssports.com/rss/headlines", Label: "CBS Sports"},
			{URL: "http://rss.cnn.com/rss/si_topstories.rss", Label: "Sports Illustrated CNN"},
			{URL: "https://www.latimes.com/sports/rss2.0.xml", Label: "LA Times Sports"},
			{URL: "https://www.espn.com/espn/rss/nfl/news", Label: "ESPN NFL"},
			{URL: "https://www.espn.com/espn/rss/nba/news", Label: "ESPN NBA"},
			{URL: "https://www.espn.com/espn/rss/mlb/news", Label: "ESPN MLB"},
			{URL: "https://www.espn.com/espn/rss/soccer/news", Label: "ESPN Soccer"},
			{URL: "https://www.theguardian.com/sport/rss", Label: "The Guardian Sports"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/sports/rss.xml", Label: "NYT Sports"},
			// Additional Sports Sources
			{URL: "https://sports.yahoo.com/rss/", Label: "Yahoo Sports"},
			{URL: "https://bleacherreport.com/articles/feed", Label: "Bleacher Report"},
			{URL: "https://www.foxsports.com/rss", Label: "Fox Sports"},
			{URL: "https://www.nbcsports.com/feed", Label: "NBC Sports"},
			{URL: "https://www.espn.com/espn/rss/nhl/news", Label: "ESPN NHL"},
			{URL: "https://www.espn.com/espn/rss/golf/news", Label: "ESPN Golf"},
			{URL: "https://www.espn.com/espn/rss/tennis/news", Label: "ESPN Tennis"},
			// RSS APP feeds
			{URL: "https://rss.app/feeds/wGtHhwQaOwup8JQs.xml", Label: "New York Post"},
		},
		"tech": {
			// Major Tech Publications
			{URL: "https://techcrunch.com/feed/", Label: "TechCrunch"},
			{URL: "https://www.theverge.com/rss/index.xml", Label: "The Verge"},
			{URL: "https://www.wired.com/feed/rss", Label: "Wired"},
			{URL: "https://www.engadget.com/rss.xml", Label: "Engadget"},
			{URL: "https://arstechnica.com/feed/", Label: "Ars Technica"},
			{URL: "https://www.cnet.com/rss/news/", Label: "CNET"},
			{URL: "https://www.theverge.com/tech/rss/index.xml", Label: "The Verge Tech"},
			{URL: "https://mashable.com/feeds/rss/all", Label: "Mashable"},
			{URL: "https://www.recode.net/rss/index.xml", Label: "Recode"},
			{URL: "https://www.theguardian.com/technology/rss", Label: "The Guardian Tech"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/technology/rss.xml", Label: "NYT Technology"},
			{URL: "https://www.wsj.com/xml/rss/3_7455.xml", Label: "WSJ Tech"},
			{URL: "https://www.zdnet.com/news/rss.xml", Label: "ZDNet"},
			// RSS APP feeds
			{URL: "https://rss.app/feeds/wGtHhwQaOwup8JQs.xml", Label: "New York Post"},
		},
		"entertainment": {
			// Entertainment Publications
			{URL: "https://variety.com/feed/", Label: "Variety"},
			{URL: "https://ew.com/feed/", Label: "Entertainment Weekly"},
			{URL: "https://www.hollywoodreporter.com/feed/", Label: "Hollywood Reporter"},
			{URL: "https://deadline.com/feed/", Label: "Deadline"},
			{URL: "https://www.latimes.com/entertainment-arts/rss2.0.xml", Label: "LA Times Entertainment"},
			{URL: "https://www.theguardian.com/film/rss", Label: "The Guardian Film"},
			{URL: "https://www.theguardian.com/tv-and-radio/rss", Label: "The Guardian TV"},
			{URL: "https://www.theguardian.com/music/rss", Label: "The Guardian Music"},
			{URL: "https://www.rollingstone.com/feed/", Label: "Rolling Stone"},
			{URL: "https://pitchfork.com/rss/news/", Label: "Pitchfork"},
			{URL: "https://consequence.net/feed/", Label: "Consequence"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/arts/rss.xml", Label: "NYT Arts"},
			// Additional Entertainment Sources
			{URL: "https://www.billboard.com/feed/", Label: "Billboard"},
			{URL: "https://www.vulture.com/rss", Label: "Vulture"},
			{URL: "https://www.indiewire.com/feed/", Label: "IndieWire"},
			{URL: "https://www.avclub.com/rss", Label: "The A.V. Club"},
			{URL: "https://www.nme.com/feed", Label: "NME"},
			{URL: "https://www.metacritic.com/rss/movies", Label: "Metacritic Movies"},
			// RSS APP feeds
			{URL: "https://rss.app/feeds/NqNqG0vL6EpyGww2.xml", Label: "PJ Media"},
		},
		"business": {
			// Business & Finance
			{URL: "https://feeds.bloomberg.com/markets/news.rss", Label: "Bloomberg"},
			{URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Label: "CNBC"},
			{URL: "https://www.economist.com/rss", Label: "The Economist"},
			{URL: "https://www.ft.com/?format=rss", Label: "Financial Times"},
			{URL: "https://www.wsj.com/xml/rss/3_7014.xml", Label: "Wall Street Journal"},
			{URL: "https://feeds.fortune.com/fortune/headlines", Label: "Fortune"},
			{URL: "https://www.forbes.com/business/feed/", Label: "Forbes Business"},
			{URL: "https://www.reuters.com/business", Label: "Reuters Business"},
			{URL: "https://www.theguardian.com/business/rss", Label: "The Guardian Business"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/business/rss.xml", Label: "NYT Business"},
			{URL: "https://www.latimes.com/business/rss2.0.xml", Label: "LA Times Business"},
		},
		"lifestyle": {
			// Health & Wellness
			{URL: "https://www.health.com/syndication/feed", Label: "Health.com"},
			{URL: "https://rss.medicalnewstoday.com/featurednews.xml", Label: "Medical News Today"},
			{URL: "https://www.webmd.com/rss/rss.aspx?RSSSource=RSS_PUBLIC", Label: "WebMD"},
			{URL: "https://www.prevention.com/feed/", Label: "Prevention"},
			{URL: "https://www.shape.com/feed/", Label: "Shape"},
			{URL: "https://www.menshealth.com/rss/all.xml/", Label: "Men's Health"},
			{URL: "https://www.womenshealthmag.com/rss/all.xml/", Label: "Women's Health"},
			// Travel
			{URL: "https://www.travelandleisure.com/feed/", Label: "Travel + Leisure"},
			{URL: "https://www.cntraveler.com/feed/rss", Label: "Condé Nast Traveler"},
			{URL: "https://www.lonelyplanet.com/blog/feed/", Label: "Lonely Planet"},
			{URL: "https://www.nationalgeographic.com/travel/rss/", Label: "National Geographic Travel"},
			// Food & Cooking
			{URL: "https://www.bonappetit.com/feed/rss", Label: "Bon Appétit"},
			{URL: "https://www.foodnetwork.com/feeds/all-recipes.rss", Label: "Food Network"},
			{URL: "https://www.epicurious.com/services/rss/recipes", Label: "Epicurious"},
			{URL: "https://www.eater.com/rss/index.xml", Label: "Eater"},
			// Fashion & Style
			{URL: "https://www.vogue.com/feed/rss", Label: "Vogue"},
			{URL: "https://www.gq.com/feed/rss", Label: "GQ"},
			{URL: "https://www.elle.com/rss/all.xml/", Label: "Elle"},
			// Home & Design
			{URL: "https://www.architecturaldigest.com/feed/rss", Label: "Architectural Digest"},
			{URL: "https://www.hgtv.com/feeds/all-shows.rss", Label: "HGTV"},
			{URL: "https://www.realsimple.com/syndication/all", Label: "Real Simple"},
			// Lifestyle General
			{URL: "https://www.theguardian.com/lifeandstyle/rss", Label: "The Guardian Lifestyle"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/well/rss.xml", Label: "NYT Well"},
			{URL: "https://www.latimes.com/lifestyle/rss2.0.xml", Label: "LA Times Lifestyle"},
		},
		"culture": {
			// Arts & Culture
			{URL: "https://www.newyorker.com/feed/everything", Label: "The New Yorker"},
			{URL: "https://www.theatlantic.com/feed/all/", Label: "The Atlantic"},
			{URL: "https://www.smithsonianmag.com/rss/latest_articles/", Label: "Smithsonian Magazine"},
			{URL: "https://hyperallergic.com/feed/", Label: "Hyperallergic"},
			{URL: "https://www.artsy.net/rss/news", Label: "Artsy"},
			{URL: "https://www.theguardian.com/culture/rss", Label: "The Guardian Culture"},
			{URL: "https://www.theguardian.com/books/rss", Label: "The Guardian Books"},
			{URL: "https://www.nytimes.com/svc/collections/v1/publish/https://www.nytimes.com/section/books/rss.xml", Label: "NYT Books"},
			{URL: "https://lithub.com/feed/", Label: "Literary Hub"},
			{URL: "https://www.npr.org/rss/rss.php?id=1008", Label: "NPR Books"},
			{URL: "https://www.theparisreview.org/blog/feed/", Label: "Paris Review"},
			{URL: "https://www.latimes.com/entertainment-arts/books/rss2.0.xml", Label: "LA Times Books"},
		},
	}
}

// CategoryFor maps a request category onto a catalog category. Unknown
// names report false.
func CategoryFor(category string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "sports":
		return "sports", true
	case "tech", "technology", "business-tech":
		return "tech", true
	case "business", "finance":
		return "business", true
	case "entertainment":
		return "entertainment", true
	case "lifestyle":
		return "lifestyle", true
	case "culture":
		return "culture", true
	}
	return "", false
}

// Resolve picks the feed list for a request. A known category wins over
// the type; an unknown type falls back to news.
func (c Catalog) Resolve(feedType, category string) []types.FeedSource {
	feeds, ok := c[feedType]
	if !ok {
		feeds = c["news"]
	}
	if category == "" {
		return feeds
	}
	if name, ok := CategoryFor(category); ok {
		if dedicated, ok := c[name]; ok {
			return dedicated
		}
	}
	return feeds
}

// Categories lists catalog categories, known ones first in CategoryOrder
// and any extra configured ones after them alphabetically.
func (c Catalog) Categories() []string {
	names := make([]string, 0, len(c))
	seen := make(map[string]struct{}, len(CategoryOrder))
	for _, name := range CategoryOrder {
		if _, ok := c[name]; ok {
			names = append(names, name)
			seen[name] = struct{}{}
		}
	}
	var extra []string
	for name := range c {
		if _, ok := seen[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
