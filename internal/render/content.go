package render

// Static copy for the fixed pages. All text is pt-BR and rendered through
// the cp1252 translator, so accented characters stay literal here.

const (
	coverTitle    = "Proposta\ncomercial"
	coverSubtitle = "FOLHITA COMUNICAÇÃO VISUAL E LED"
	coverTagline  = "O MAIOR OUTDOOR DE LED DA BAHIA"
	coverBrand    = "folhita comunicação visual"

	aboutTitle = "Quem somos?"
	aboutBody  = "A Folhita Comunicação Visual é especialista em visibilidade para " +
		"marcas e negócios, com os maiores e mais impactantes outdoors de LED da " +
		"Bahia. Nossa tecnologia de última geração em painéis de LED permite que " +
		"sua mensagem se destaque, alcance mais pessoas e gere resultados reais. " +
		"Quando se trata de comunicação visual de alto impacto, a Folhita é a " +
		"escolha certa para transformar sua marca em uma referência."
	aboutTagline = "Folhita - Visibilidade que move seu negócio!"

	advantagesTitle = "Vantagens de\nanunciar com a gente"

	proposalTitle         = "Proposta comercial"
	proposalDirectedLabel = "Direcionada para: "
	proposalValidityLabel = "Orçamento válido até"
	proposalNumberLabel   = "Número da proposta"
	proposalValidityTitle = "Validade da proposta"
	proposalClientLabel   = "Aos cuidados de: "
	paymentMethods        = "PIX (SEM JUROS) | CARTÃO DE CRÉDITO COM JUROS) | BOLETO (3,5% TAXA)"

	thanksTitle = "Obrigado"
	thanksBody  = "Agradecemos imensamente por nos permitir apresentar a Folhita " +
		"Comunicação Visual E LED! Estamos prontos para transformar sua marca com " +
		"nossa comunicação de impacto, seja nos maiores outdoors de LED da Bahia " +
		"ou com nossos materiais personalizados que deixam sua marca presente no " +
		"dia a dia do seu público."
	contactNumber = "73 9982-7391"
)

var advantageItems = []string{
	"10 mil pessoas alcançadas por dia",
	"Exibição da sua marca 262 por dia",
	"Locais estratégico",
	"Fortalecimento da sua marca",
	"Aumento da sua taxa de vendas",
}

var tableHeaders = []string{"DURAÇÃO DO VÍDEO", "LOCAL", "TEMPO DE CONTRATO", "VALOR"}
