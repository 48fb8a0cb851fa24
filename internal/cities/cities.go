package cities

import "github.com/i474232898/mood-weather/internal/mood"

// buckets maps an interval key ("low,high") to representative cities.
// It is maintained separately from the mood table, so some moods have no bucket.
var buckets = map[string][]string{
	"70,80":  {"Los Angeles", "San Diego", "Santa Monica"},
	"30,40":  {"Denver", "Milwaukee", "Minneapolis"},
	"80,90":  {"Las Vegas", "Phoenix", "Miami"},
	"50,60":  {"San Francisco", "Portland", "Seattle"},
	"60,70":  {"Austin", "Dallas", "New Orleans"},
	"40,50":  {"Chicago", "Cincinnati", "Cleveland"},
	"20,30":  {"Anchorage", "Detroit", "Buffalo"},
	"90,100": {"Houston", "Tampa", "Orlando"},
	"10,20":  {"Missoula", "Fargo", "Duluth"},
	"0,10":   {"Fairbanks", "Green Bay", "Appleton"},
	"60,80":  {"Atlanta", "Tucson", "Oklahoma City"},
	"70,90":  {"Baltimore", "Louisville", "Raleigh"},
	"30,50":  {"Madison", "Toledo", "Sioux Falls"},
	"80,100": {"Charleston", "Savannah", "Jacksonville"},
	"40,60":  {"Boise", "Salt Lake City", "Colorado Springs"},
}

// Suggest returns the cities configured for the exact interval, in order.
// A nil interval or one without a bucket yields an empty slice.
func Suggest(interval *mood.Interval) []string {
	if interval == nil {
		return []string{}
	}
	list, ok := buckets[interval.Key()]
	if !ok {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
