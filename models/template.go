package models

// TemplateKey selects one of the seven fixed report types.
type TemplateKey string

const (
	TplVisitComercial      TemplateKey = "visit_comercial"
	TplAuditPool           TemplateKey = "audit_pool"
	TplAuditHACCP          TemplateKey = "audit_haccp"
	TplMaintPrev           TemplateKey = "maint_prev"
	TplSafetyCheck         TemplateKey = "safety_check"
	TplPestControl         TemplateKey = "pest_control"
	TplInterventionGeneral TemplateKey = "intervention_general"
)

// ReportTemplate is static configuration, not a stored entity: the catalog
// below is fixed at build time and never user-editable.
type ReportTemplate struct {
	Key             TemplateKey `json:"key"`
	Label           string      `json:"label"`
	DefaultCriteria []string    `json:"default_criteria"`
}

// RequiresSignatures reports whether the finalize step demands both
// signature images. Commercial visits are exempt.
func (t ReportTemplate) RequiresSignatures() bool {
	return t.Key != TplVisitComercial
}

// HasOrderSection reports whether the form exposes the sales-order ledger.
func (t ReportTemplate) HasOrderSection() bool {
	return t.Key == TplVisitComercial
}

// Templates is the full catalog keyed by TemplateKey.
var Templates = map[TemplateKey]ReportTemplate{
	TplVisitComercial: {
		Key:   TplVisitComercial,
		Label: "1. Visita Comercial / Prospeção",
		DefaultCriteria: []string{
			"Apresentação da Empresa e Serviços",
			"Levantamento de Necessidades do Cliente",
			"Análise de Concorrência no Local",
			"Recetividade à Proposta Comercial",
			"Agendamento de Próxima Reunião",
		},
	},
	TplAuditPool: {
		Key:   TplAuditPool,
		Label: "2. Relatório de Intervenção (Piscinas)",
		DefaultCriteria: []string{
			"Identificação da Piscina",
			"Leitura: Cloro Livre (mg/l)",
			"Leitura: pH",
			"Leitura: Temp. (°C)",
			"Aspiração da Piscina",
			"Limpeza das paredes com escova",
			"Remoção de particulas flutuantes (insetos, folhas etc.)",
			"Limpeza dos cestos do Skimmer",
			"Limpeza do pré-filtro",
			"Tempo de lavagem do pré-filtro (min.)",
			"Lavagem do Filtro de Areia",
			"Adição de Cloro/bromo",
			"Adição de corretor de pH",
			"Adição de algicida",
			"Verificação de Níveis de Reagentes",
			"Verificação de Bombas Doseadoras",
		},
	},
	TplAuditHACCP: {
		Key:   TplAuditHACCP,
		Label: "3. Auditoria HACCP (Segurança Alimentar)",
		DefaultCriteria: []string{
			"Higiene Pessoal dos Manipuladores",
			"Controlo de Temperaturas (Frio/Quente)",
			"Rastreabilidade dos Produtos",
			"Limpeza e Desinfeção de Superfícies",
			"Controlo de Pragas",
			"Gestão de Resíduos",
		},
	},
	TplMaintPrev: {
		Key:   TplMaintPrev,
		Label: "4. Manutenção Preventiva Geral",
		DefaultCriteria: []string{
			"Quadro Elétrico e Disjuntores",
			"Iluminação Interior e Exterior",
			"Sistema de AVAC (Ar Condicionado)",
			"Rede de Águas e Esgotos",
			"Estruturas (Portas, Janelas, Paredes)",
		},
	},
	TplSafetyCheck: {
		Key:   TplSafetyCheck,
		Label: "5. Verificação de Segurança (HST)",
		DefaultCriteria: []string{
			"Extintores (Validade e Acesso)",
			"Sinalética de Emergência",
			"Desobstrução de Saídas de Emergência",
			"Uso de EPIs",
			"Kits de Primeiros Socorros",
		},
	},
	TplPestControl: {
		Key:   TplPestControl,
		Label: "6. Relatório de Intervenção (Pragas)",
		DefaultCriteria: []string{
			"TIPO DE VISITA: Rotina",
			"TIPO DE VISITA: Reclamação",
			"TIPO DE VISITA: Consolidação",
			"TIPO DE VISITA: Inspeção",
			"ALVO: Controlo de Roedores",
			"ALVO: Controlo de Rastejantes",
			"ALVO: Controlo de Insetos Voadores",
			"ALVO: Controlo de Aves Urbanas",
			"ROEDORES: Engodo Totalmente Consumido (Indicar estações nas obs)",
			"ROEDORES: Engodo Parcialmente Consumido (Indicar estações nas obs)",
			"ROEDORES: Subs. Elementos de Motorização",
			"ROEDORES: Subs. Engodo em todos os postos",
			"BIOCIDA (Roedores): Talon",
			"BIOCIDA (Roedores): Bromadol Isco",
			"BIOCIDA (Roedores): Vabitox Facum",
			"RASTEJANTES: Biocida Solfac 50 EW",
			"RASTEJANTES: Biocida Agita 10 WG",
			"RASTEJANTES: Biocida K-Othrine SC 25",
			"RASTEJANTES: Instalador de Insecto-Caçador",
			"RASTEJANTES: Substituição de Placas",
			"AVES: Sistema de Captura",
			"AVES: Pino Dissuador",
			"AVES: Rede Contra Aves",
			"Estações deslocadas sem consentimento",
			"Entrega das Fichas de Segurança Biocidas",
			"Entrega pelo cliente da planta do local",
			"Entrega do Manual do Controlo de Pragas",
			"Equipamento/Sistema Danificado",
			"Instruções/Avisos Danificados ou Removidos",
			"Substituição de Instruções/Avisos",
			"Entrega ao cliente de Mapa de Localização de Iscos",
			"Equipamento/Sistema alterado sem consentimento",
		},
	},
	TplInterventionGeneral: {
		Key:   TplInterventionGeneral,
		Label: "7. Relatório de Intervenção (Geral)",
		// Free-text report: no evaluation grid.
		DefaultCriteria: []string{},
	},
}

// TemplateByKey returns the catalog entry, ok=false for unknown keys.
func TemplateByKey(key TemplateKey) (ReportTemplate, bool) {
	t, ok := Templates[key]
	return t, ok
}
