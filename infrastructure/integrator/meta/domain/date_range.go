package metadomain

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vfg2006/meta-ads-agent/pkg/utils"
)

const DefaultDatePreset = "last_30d"

var datePresets = map[string]struct{}{
	"today": {}, "yesterday": {}, "this_month": {}, "last_month": {}, "this_quarter": {},
	"last_quarter": {}, "this_year": {}, "last_year": {}, "last_3d": {}, "last_7d": {},
	"last_14d": {}, "last_28d": {}, "last_30d": {}, "last_90d": {}, "last_week_mon_sun": {},
	"last_week_sun_sat": {}, "last_quarter_3x30": {}, "last_year_3x30": {},
	"this_week_mon_today": {}, "this_week_sun_today": {}, "this_month_max": {}, "maximum": {},
}

// DateRange define o período dos insights: um preset da Graph API ou um intervalo explícito
type DateRange struct {
	Preset string
	Since  *time.Time
	Until  *time.Time
}

func IsDatePreset(preset string) bool {
	_, ok := datePresets[preset]
	return ok
}

// ParseDateRange monta um DateRange a partir de parâmetros textuais.
// Um intervalo since/until tem precedência sobre o preset.
func ParseDateRange(preset, since, until string) (DateRange, error) {
	if since != "" || until != "" {
		if since == "" || until == "" {
			return DateRange{}, fmt.Errorf("since e until devem ser informados juntos")
		}

		start, err := utils.ParseDate(since)
		if err != nil {
			return DateRange{}, fmt.Errorf("data inicial inválida: %w", err)
		}
		end, err := utils.ParseDate(until)
		if err != nil {
			return DateRange{}, fmt.Errorf("data final inválida: %w", err)
		}
		if end.Before(*start) {
			return DateRange{}, fmt.Errorf("data final anterior à data inicial")
		}

		return DateRange{Since: start, Until: end}, nil
	}

	if preset == "" {
		preset = DefaultDatePreset
	}
	if !IsDatePreset(preset) {
		return DateRange{}, fmt.Errorf("date_preset desconhecido: %s", preset)
	}

	return DateRange{Preset: preset}, nil
}

// Apply adiciona o período aos parâmetros da requisição
func (d DateRange) Apply(params url.Values) {
	if d.Since != nil && d.Until != nil {
		params.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
			d.Since.Format(time.DateOnly), d.Until.Format(time.DateOnly)))
		return
	}

	preset := d.Preset
	if preset == "" {
		preset = DefaultDatePreset
	}
	params.Set("date_preset", preset)
}
