package campaigning

import "time"

func SetClock(svc CampaignService, now func() time.Time) {
	svc.(*Service).now = now
}

func SetIDGenerator(svc CampaignService, gen func() (string, error)) {
	svc.(*Service).generateID = gen
}

var MetricValue = metricValue
