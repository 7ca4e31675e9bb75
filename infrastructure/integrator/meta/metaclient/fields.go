package metaclient

import "strings"

// Field é um item da mini-linguagem de seleção de campos da Graph API.
// Campos com filhos são renderizados como nome{filho1,filho2}.
type Field struct {
	Name     string
	Children FieldList
}

type FieldList []Field

func Fields(names ...string) FieldList {
	list := make(FieldList, 0, len(names))
	for _, name := range names {
		list = append(list, Field{Name: name})
	}
	return list
}

func Nested(name string, children FieldList) Field {
	return Field{Name: name, Children: children}
}

// With devolve uma nova lista com os campos adicionais, sem alterar a original
func (l FieldList) With(fields ...Field) FieldList {
	out := make(FieldList, 0, len(l)+len(fields))
	out = append(out, l...)
	return append(out, fields...)
}

func (f Field) String() string {
	if len(f.Children) == 0 {
		return f.Name
	}
	return f.Name + "{" + f.Children.String() + "}"
}

func (l FieldList) String() string {
	parts := make([]string, 0, len(l))
	for _, f := range l {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ",")
}

var (
	InsightFields        = Fields("spend", "impressions", "clicks", "ctr", "cpc", "cpm", "reach", "frequency", "actions", "cost_per_action")
	AccountInsightFields = Fields("spend", "impressions", "clicks", "ctr", "cpc", "cpm", "reach", "frequency")

	CampaignFields = Fields("id", "name", "status", "objective", "created_time", "updated_time", "daily_budget", "lifetime_budget")
	AdSetFields    = Fields("id", "name", "status", "effective_status", "daily_budget", "lifetime_budget", "optimization_goal", "created_time", "updated_time")
	AdFields       = Fields("id", "name", "status", "effective_status", "creative", "created_time", "updated_time")

	AdAccountFields = Fields("id", "account_id", "currency", "account_status", "timezone_name")
	AppFields       = Fields("id", "name")
)

// HierarchyFields pede campanhas, conjuntos, anúncios e os insights de cada nível numa única consulta
func HierarchyFields() FieldList {
	ads := AdFields.With(Nested("insights", InsightFields))
	adSets := AdSetFields.With(Nested("insights", InsightFields), Nested("ads", ads))

	return CampaignFields.With(Nested("insights", InsightFields), Nested("adsets", adSets))
}
