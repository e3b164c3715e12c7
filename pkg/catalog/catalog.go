// Package catalog holds the fixed reference lists used by the listing forms.
package catalog

import "sort"

// Property categories
const (
	CategorySale = "venda"
	CategoryRent = "aluguel"
)

// Categories lists the valid listing categories
var Categories = []string{CategorySale, CategoryRent}

// State is a Brazilian federative unit
type State struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// BrazilianStates lists the 26 states and the Federal District
var BrazilianStates = []State{
	{"Acre", "AC"}, {"Alagoas", "AL"}, {"Amapá", "AP"},
	{"Amazonas", "AM"}, {"Bahia", "BA"}, {"Ceará", "CE"},
	{"Distrito Federal", "DF"}, {"Espírito Santo", "ES"}, {"Goiás", "GO"},
	{"Maranhão", "MA"}, {"Mato Grosso", "MT"}, {"Mato Grosso do Sul", "MS"},
	{"Minas Gerais", "MG"}, {"Pará", "PA"}, {"Paraíba", "PB"},
	{"Paraná", "PR"}, {"Pernambuco", "PE"}, {"Piauí", "PI"},
	{"Rio de Janeiro", "RJ"}, {"Rio Grande do Norte", "RN"}, {"Rio Grande do Sul", "RS"},
	{"Rondônia", "RO"}, {"Roraima", "RR"}, {"Santa Catarina", "SC"},
	{"São Paulo", "SP"}, {"Sergipe", "SE"}, {"Tocantins", "TO"},
}

// TypeGroup is a labelled group of property types
type TypeGroup struct {
	Label string   `json:"label"`
	Types []string `json:"types"`
}

// PropertyTypeGroups is the property-type catalogue offered by the listing form
var PropertyTypeGroups = []TypeGroup{
	{"Imóveis Residenciais", []string{
		"Casa", "Apartamento", "Sobrado", "Kitnet / Studio", "Loft", "Cobertura", "Duplex / Triplex",
		"Casa geminada", "Casa de condomínio", "Mansão", "Bangalô", "Chalé", "Flat", "Edícula",
		"Quitinete", "Casa térrea", "Casa de vila", "Casa de campo / Sítio residencial",
		"Fazenda com moradia", "Moradia estudantil / República",
	}},
	{"Imóveis Comerciais", []string{
		"Sala comercial", "Loja / Ponto comercial", "Galpão", "Depósito / Armazém", "Escritório",
		"Andar comercial", "Quiosque", "Box comercial", "Auditório", "Salão comercial",
		"Centro empresarial", "Shopping center (loja ou espaço interno)", "Coworking",
	}},
	{"Imóveis Industriais", []string{
		"Fábrica", "Galpão industrial", "Parque industrial", "Usina", "Hangar",
	}},
	{"Imóveis Rurais", []string{
		"Sítio", "Fazenda", "Chácara", "Haras", "Granja", "Terreno rural", "Propriedade agropecuária",
	}},
	{"Terrenos e Lotes", []string{
		"Lote urbano", "Terreno em condomínio", "Terreno comercial", "Terreno industrial",
		"Terreno agrícola", "Loteamento",
	}},
	{"Imóveis de Lazer / Temporada", []string{
		"Casa de praia", "Casa de campo", "Chalé de montanha", "Pousada", "Resort",
		"Hotel / Motel", "Flat de temporada",
	}},
	{"Imóveis Institucionais / Especiais", []string{
		"Escola", "Hospital / Clínica", "Igreja / Templo", "Teatro / Cinema", "Museu / Galeria",
		"Centro esportivo / Academia", "Estacionamento / Garagem", "Delegacia / Quartel / Prédio público",
	}},
}

var (
	stateIndex = make(map[string]State, len(BrazilianStates))
	typeIndex  = make(map[string]struct{})
)

func init() {
	for _, s := range BrazilianStates {
		stateIndex[s.Abbr] = s
	}
	for _, g := range PropertyTypeGroups {
		for _, t := range g.Types {
			typeIndex[t] = struct{}{}
		}
	}
}

// IsState reports whether abbr is a valid UF abbreviation
func IsState(abbr string) bool {
	_, ok := stateIndex[abbr]
	return ok
}

// StateName returns the full name for a UF abbreviation, or abbr itself
func StateName(abbr string) string {
	if s, ok := stateIndex[abbr]; ok {
		return s.Name
	}
	return abbr
}

// IsPropertyType reports whether t is in the catalogue
func IsPropertyType(t string) bool {
	_, ok := typeIndex[t]
	return ok
}

// IsCategory reports whether c is a valid listing category
func IsCategory(c string) bool {
	return c == CategorySale || c == CategoryRent
}

// PropertyTypes returns every catalogued type, sorted
func PropertyTypes() []string {
	out := make([]string, 0, len(typeIndex))
	for t := range typeIndex {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
