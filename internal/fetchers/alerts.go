package fetchers

import (
	"github.com/mmcdole/gofeed"

	"meteocast/internal/models"
)

// ParseAlerts parses the weather-warning RSS feed into alert records in feed
// order.
func ParseAlerts(data []byte) ([]models.Alert, error) {
	feed, err := gofeed.NewParser().ParseString(string(data))
	if err != nil {
		return nil, malformedWrap("alerts", "unparseable RSS", err)
	}

	alerts := make([]models.Alert, 0, len(feed.Items))
	for _, item := range feed.Items {
		alerts = append(alerts, models.Alert{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Published:   item.PublishedParsed,
		})
	}
	return alerts, nil
}
