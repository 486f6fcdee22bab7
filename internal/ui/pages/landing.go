package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/projeto-tutor/tutor/internal/content"
	"github.com/projeto-tutor/tutor/internal/ui/components"
)

// Section IDs in document order.
const (
	SectionProblem     = "falha"
	SectionRecognition = "reconhecimento"
	SectionWhat        = "o-que-e"
	SectionHow         = "como-funciona"
	SectionImpact      = "impacto"
)

// SectionOrder lists the content sections between hero and footer.
var SectionOrder = []string{SectionProblem, SectionRecognition, SectionWhat, SectionHow, SectionImpact}

const (
	sectionTitle = "text-2xl md:text-3xl font-medium text-white"
	divider      = "border-t border-white/5"
)

// Landing renders the page body: header, hero, the five content sections
// and the footer, always in that order.
func Landing(opts Options) g.Node {
	opts = opts.withDefaults()
	return h.Div(
		h.ID("page"),
		h.Class("min-h-screen selection:bg-slate-700 selection:text-white"),
		h.Div(h.Class("grain fixed inset-0 bg-grain pointer-events-none z-50 mix-blend-overlay opacity-20"), h.Aria("hidden", "true")),
		siteHeader(),
		hero(),
		problemSection(),
		recognitionSection(),
		whatSection(),
		howSection(),
		impactSection(),
		siteFooter(opts),
	)
}

func siteHeader() g.Node {
	return h.Header(
		h.Class("fixed top-0 left-0 right-0 z-40 border-b border-white/5 bg-black/50 backdrop-blur-md"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-6 h-20 flex items-center justify-between"),
			h.Div(
				h.Class("flex items-center gap-3"),
				components.Icon(components.IconBox, "w-6 h-6 text-slate-300 stroke-[1.5]"),
				h.Span(h.Class("brand text-lg font-semibold tracking-wide text-slate-200 uppercase"), g.Text(content.Brand)),
			),
		),
	)
}

func hero() g.Node {
	return h.Div(
		h.ID("hero"),
		h.Class("relative pt-32 pb-20 md:pt-48 md:pb-32 overflow-hidden"),
		h.Div(
			h.Class("absolute inset-0 z-0"),
			h.Img(
				h.Src(content.HeroImage),
				h.Alt("City Infrastructure"),
				h.Class("w-full h-full object-cover opacity-40 mix-blend-luminosity grayscale"),
			),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-b from-tutor-bg/90 via-tutor-bg/80 to-tutor-bg")),
		),
		h.Div(
			h.Class("relative z-10 max-w-7xl mx-auto px-6"),
			h.H1(h.Class("text-4xl md:text-5xl lg:text-6xl font-medium text-white mb-6 leading-tight tracking-tight"), g.Text(content.HeroTitle)),
			h.P(h.Class("text-lg md:text-xl text-slate-300 max-w-2xl leading-relaxed mb-10"), g.Text(content.HeroLead)),
		),
	)
}

func problemSection() g.Node {
	return components.Section(components.SectionProps{
		ID:    SectionProblem,
		Class: divider,
		Children: []g.Node{
			h.H2(h.Class(sectionTitle+" mb-8"), g.Text("A falha invisível da educação")),
			h.Div(
				h.Class("space-y-4 max-w-3xl text-slate-300 text-lg md:text-xl leading-relaxed"),
				h.P(g.Text("A educação básica investe em escolas, livros, professores e programas.")),
				h.P(g.Text("Mas não possui um instrumento mínimo que verifique se a execução da rotina de estudo acontece no ambiente domiciliar.")),
				h.P(
					g.Text("Essa lacuna entre investimento educacional e execução real é conhecida como "),
					h.Strong(h.Class("text-white font-medium"), g.Text("falha da última milha")),
					g.Text("."),
				),
				h.P(h.Class("text-slate-400 text-base mt-4"), g.Text("Ela afeta principalmente crianças de famílias menos favorecidas, ampliando desigualdades e gerando abandono silencioso.")),
			),
		},
	})
}

func recognitionSection() g.Node {
	return components.Section(components.SectionProps{
		ID:    SectionRecognition,
		Class: divider + " bg-white/[0.01]",
		Children: []g.Node{
			h.H2(h.Class(sectionTitle+" mb-12"), g.Text("O problema é reconhecido internacionalmente")),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Map(content.Sources(), sourceCard),
			),
		},
	})
}

func sourceCard(s content.Source) g.Node {
	return components.Card(components.CardProps{
		Icon:  components.IconName(s.Icon),
		Title: s.Name,
		Description: g.Group{
			h.P(h.Class("mb-4"), g.Text(s.Summary)),
			g.El("blockquote", h.Class("border-l-2 border-slate-600 pl-4 italic text-slate-400 text-sm mb-4"), g.Text(s.Quote)),
			h.A(
				h.Href(s.URL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				h.Class("source-link flex items-center text-xs text-slate-400 hover:text-white transition-colors uppercase tracking-wider"),
				g.Text(s.LinkLabel+" "),
				components.Icon(components.IconArrowUpRight, "w-3 h-3 ml-1"),
			),
		},
	})
}

func whatSection() g.Node {
	return components.Section(components.SectionProps{
		ID:    SectionWhat,
		Class: divider,
		Children: []g.Node{
			h.Div(
				h.Class("mb-12 max-w-3xl"),
				h.H2(h.Class(sectionTitle+" mb-6"), g.Text("O que é o Tutor")),
				h.P(h.Class("text-lg md:text-xl text-slate-300 leading-relaxed mb-4"), g.Text("O Tutor é uma infraestrutura de execução educacional domiciliar.")),
				h.P(
					h.Class("text-slate-300 leading-relaxed"),
					g.Text("Ele não ensina conteúdos novos, não avalia desempenho e não substitui a escola ou o professor. "+
						"Sua função é simples: garantir que a criança tente estudar todos os dias, usando o material definido pela escola."),
				),
			),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6 mb-12"),
				g.Map(content.Features(), func(f content.Feature) g.Node {
					return components.Card(components.CardProps{
						Icon:        components.IconName(f.Icon),
						Title:       f.Title,
						Description: g.Text(f.Description),
					})
				}),
			),
			h.Div(
				h.Class(divider+" pt-10"),
				h.H3(h.Class("text-white text-lg font-medium mb-6"), g.Text("Princípios de Integridade")),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
					g.Map(content.Principles(), func(p string) g.Node {
						return h.Div(
							h.Class("principle flex items-start gap-3 text-slate-400"),
							components.Icon(components.IconBan, "w-5 h-5 text-red-400/80 mt-0.5 shrink-0"),
							h.Span(h.Class("text-sm"), g.Text(p)),
						)
					}),
				),
			),
		},
	})
}

func howSection() g.Node {
	return components.Section(components.SectionProps{
		ID:    SectionHow,
		Class: divider + " bg-white/[0.01]",
		Children: []g.Node{
			h.H2(h.Class(sectionTitle+" mb-12"), g.Text("Como funciona na prática")),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 gap-8 text-slate-300"),
				g.Map(content.Steps(), step),
			),
		},
	})
}

func step(s content.Step) g.Node {
	return h.Div(
		h.Class("step space-y-4"),
		h.H3(
			h.Class("text-white text-lg font-medium flex items-center gap-2"),
			h.Span(h.Class("step-number flex items-center justify-center w-6 h-6 rounded-full bg-slate-800 text-xs text-white"), g.Text(strconv.Itoa(s.Number))),
			g.Text(s.Title),
		),
		h.P(g.Text(s.Body)),
		g.If(len(s.Routine) > 0, h.Ul(
			h.Class("list-disc pl-5 space-y-2 text-slate-400"),
			g.Map(s.Routine, func(item string) g.Node { return h.Li(g.Text(item)) }),
		)),
	)
}

func impactSection() g.Node {
	return components.Section(components.SectionProps{
		ID:    SectionImpact,
		Class: divider,
		Children: []g.Node{
			h.Div(
				h.Class("mb-12 max-w-4xl"),
				h.H2(h.Class(sectionTitle+" mb-6"), g.Text("Reduzindo a desigualdade educacional")),
				h.Div(
					h.Class("text-lg md:text-xl text-slate-300 leading-relaxed space-y-4"),
					h.P(g.Text("Crianças com apoio em casa recebem explicações individuais. Crianças sem esse apoio ficam sem amparo educacional, causando defasagem de aprendizado e desigualdade social.")),
					h.P(g.Text("O Tutor atua exatamente nesse ponto, oferecendo o mínimo necessário para que a criança mantenha uma rotina diária saudável de aprendizado orientado, mesmo em ambientes caóticos.")),
					h.P(h.Class("text-slate-400 text-base"), g.Text("O foco é melhorar a qualidade do aprendizado das crianças menos favorecidas e reduzir o salto social do aprendizado.")),
				),
			),
			h.H3(
				h.Class("text-xl font-medium mb-8 text-white flex items-center gap-3"),
				g.Text("Impacto Sistêmico "),
				h.Span(h.Class("text-base font-normal text-slate-400"), g.Text("(dados agregados)")),
			),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
				statCard(content.StudyTimeStat, components.ColumnBars(content.StudyTimeBars())),
				statCard(content.FrequencyStat, components.ActivityGrid(content.FrequencyGrid())),
				statCard(content.IntensityStat, components.BarChart(components.BarChartProps{
					Data: content.IntensitySeries(),
					Fill: content.IntensityFill,
				})),
				statCard(content.AttritionStat, attritionViz()),
			),
			privacyNotice(),
		},
	})
}

func statCard(s content.Stat, viz g.Node) g.Node {
	return components.StatCard(components.StatCardProps{
		Icon:     components.IconName(s.Icon),
		Title:    s.Title,
		Subtitle: s.Subtitle,
		Value:    s.Value,
		Viz:      viz,
	})
}

func attritionViz() g.Node {
	return h.Div(
		h.Class("flex items-center justify-between h-full w-full"),
		h.Div(h.Class("flex-1 opacity-20"), components.BlockGrid(content.AttritionBlocks, 4)),
		h.Div(
			h.Class("w-24 h-24"),
			components.PieChart(components.PieChartProps{
				Data:         content.AttritionSeries(),
				Palette:      content.AttritionPalette(),
				InnerRadius:  25,
				OuterRadius:  35,
				PaddingAngle: 5,
			}),
		),
	)
}

func privacyNotice() g.Node {
	return h.Div(
		h.Class("privacy mt-12 p-8 bg-slate-900/40 border border-tutor-border rounded-sm relative overflow-hidden"),
		h.Div(h.Class("absolute top-0 left-0 w-1 h-full bg-slate-500")),
		h.Div(
			h.Class("flex items-start gap-4"),
			h.Div(h.Class("p-2 bg-slate-800/50 rounded-full mt-1"), components.Icon(components.IconLock, "w-5 h-5 text-slate-300 stroke-[1.5]")),
			h.Div(
				h.H4(h.Class("text-white text-lg font-medium mb-3"), g.Text("Informação útil, sem dados pessoais")),
				h.P(
					h.Class("text-base text-slate-300 leading-relaxed mb-4"),
					g.Text("O Tutor gera apenas informações agregadas e impessoais sobre a execução da rotina de estudo. "),
					h.Strong(h.Class("text-white font-medium"), g.Text("Não solicita e-mail, não pede cadastro, não requer login social.")),
				),
				h.P(
					h.Class("text-sm text-slate-400"),
					g.Text("Todas as métricas são "),
					h.Span(h.Class("text-slate-300"), g.Text("públicas e auditáveis")),
					g.Text(", permitindo uma gestão transparente e aberta ao acompanhamento da sociedade e órgãos de controle, seguindo rigorosas normas de conformidade."),
				),
			),
		),
	)
}

func siteFooter(opts Options) g.Node {
	return h.Footer(
		h.Class("relative py-24 border-t border-white/5 overflow-hidden"),
		h.Div(h.Class("footer-texture absolute inset-0 opacity-5 mix-blend-overlay bg-cover bg-center")),
		h.Div(h.Class("absolute inset-0 bg-gradient-to-t from-tutor-bg via-transparent to-tutor-bg")),
		h.Div(
			h.Class("relative z-10 max-w-4xl mx-auto px-6 text-center"),
			h.H2(
				h.Class("text-2xl md:text-3xl font-medium text-slate-200 mb-6 leading-relaxed"),
				g.Text("O Tutor não cria atalhos. "),
				h.Br(),
				g.Text("Ele garante que o caminho seja percorrido todos os dias."),
			),
			h.P(
				h.Class("text-slate-400 text-lg mb-12 max-w-2xl mx-auto"),
				g.Text("Projeto Tutor é uma infraestrutura independente. O criador atua como guardião do propósito, não como operador político ou comercial."),
			),
			h.Div(
				h.Class("flex flex-col items-center gap-6"),
				h.A(h.Href("mailto:"+opts.ContactEmail), h.Class("contact text-slate-400 hover:text-slate-200 transition-colors"), g.Text(opts.ContactEmail)),
			),
		),
		h.Div(
			h.Class("relative z-10 mt-24 max-w-7xl mx-auto px-6 flex flex-col md:flex-row justify-between items-center text-xs text-slate-500"),
			h.Div(g.Text(copyright(opts.Year, content.Brand))),
			h.Div(
				h.Class("flex gap-6 mt-4 md:mt-0"),
				h.Span(g.Text("Todos os direitos reservados")),
				h.A(h.Href("#"), h.Class("hover:text-slate-400"), g.Text("Privacidade")),
			),
		),
	)
}
