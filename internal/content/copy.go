package content

// Brand is the product name shown in the header and footer.
const Brand = "Tutor"

// Source is a third-party report cited on the page.
type Source struct {
	Icon      string
	Name      string
	Summary   string
	Quote     string
	LinkLabel string
	URL       string
}

// Feature is one of the "what Tutor is" cards.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Step is one stage of the three-step explainer.
type Step struct {
	Number  int
	Title   string
	Body    string
	Routine []string
	Outro   string
}

// Stat is the text of a statistic card. Value may be empty.
type Stat struct {
	Icon     string
	Title    string
	Subtitle string
	Value    string
}

// Hero copy.
const (
	HeroTitle = "A primeira solução para a falha da última milha educacional"
	HeroLead  = "O Tutor garante que a rotina da lição de casa realmente aconteça — especialmente para crianças que não têm apoio educacional fora da escola."
	HeroImage = "https://picsum.photos/id/1033/2000/1200?grayscale"
)

// Sources returns the report cards of the international recognition section.
func Sources() []Source {
	return []Source{
		{
			Icon:      "globe",
			Name:      "UNESCO",
			Summary:   "As lacunas educacionais geram perdas econômicas globais massivas, resultantes da falha entre acesso à educação e execução real.",
			Quote:     "“Out-of-school children and educational gaps cost the global economy US$ 10 trillion a year.”",
			LinkLabel: "Ler artigo",
			URL:       "https://www.unesco.org/en/articles/out-school-children-and-educational-gaps-cost-global-economy-10000-billion-year",
		},
		{
			Icon:      "alert-triangle",
			Name:      "Banco Mundial",
			Summary:   "O Banco Mundial reconhece explicitamente que o aumento do gasto educacional não está se convertendo em aprendizagem efetiva.",
			Quote:     "“Despite increased education spending, Latin America and the Caribbean face a profound learning crisis.”",
			LinkLabel: "Ler comunicado",
			URL:       "https://www.worldbank.org/pt/news/press-release/2022/06/23/education-latin-america",
		},
		{
			Icon:      "quote",
			Name:      "PNUD (UNDP)",
			Summary:   "O PNUD identifica a última milha como o gargalo estrutural recorrente na execução de políticas públicas.",
			Quote:     "“The ‘last mile’ is often where otherwise well-designed public policies fail.”",
			LinkLabel: "Ver publicação",
			URL:       "https://www.undp.org/sites/g/files/zskgke326/files/publications/getting-to-the-last-mile-oct-2016.pdf",
		},
	}
}

// Features returns the four cards describing what Tutor does.
func Features() []Feature {
	return []Feature{
		{Icon: "clipboard-list", Title: "Execução diária", Description: "Garante que a lição de casa e o reforço aconteçam."},
		{Icon: "wifi-off", Title: "Offline-first", Description: "Funciona sem internet e em hardware legado."},
		{Icon: "shield-check", Title: "Regra impessoal", Description: "Sem conflito familiar, sem negociação emocional."},
		{Icon: "heart", Title: "Falha graciosa", Description: "Detecta fadiga e encerra com dignidade."},
	}
}

// Principles returns the integrity principles, each an exclusion.
func Principles() []string {
	return []string{
		"Sem gamificação, ranking ou disputa de atenção.",
		"Sem anúncios, propaganda ou interrupções comerciais.",
		"Não avalia, não julga e não classifica o aluno.",
		"Não é Edtech, não visa M&A. É infraestrutura.",
	}
}

// Steps returns the three-step explainer.
func Steps() []Step {
	return []Step{
		{
			Number: 1,
			Title:  "Na escola",
			Body:   "A professora explica o conteúdo em sala e passa a lição.",
		},
		{
			Number: 2,
			Title:  "Em casa",
			Body:   "O Tutor organiza a rotina:",
			Routine: []string{
				"15 minutos de reforço inicial",
				"7 minutos de pausa guiada para descanso",
				"15 minutos para a criança tentar fazer a lição",
				"5 minutos de pausa guiada de finalização",
			},
		},
		{
			Number: 3,
			Title:  "O apoio",
			Body:   "Quando a criança trava, o Tutor explica apenas o processo, com exemplos mais simples, sem fornecer respostas prontas, sem avaliar e sem julgar.",
		},
	}
}

// Statistic card copy, in display order.
var (
	StudyTimeStat = Stat{Icon: "clock", Title: "Tempo médio diário de estudo", Value: "47 minutos"}
	FrequencyStat = Stat{Icon: "calendar-days", Title: "Frequência", Subtitle: "de sessões concluídas"}
	IntensityStat = Stat{Icon: "zap", Title: "Intensidade média", Subtitle: "de pedidos pedagógicos", Value: "5 / semana"}
	AttritionStat = Stat{Icon: "alert-triangle", Title: "Taxa de encerramento", Subtitle: "por fadiga cognitiva", Value: "9%"}
)
