package service

import (
	"context"
	"maps"

	"golang.org/x/text/language"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

// Supported UI languages. The first one is the default.
var supportedLanguages = []language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
}

var catalogs = map[string]map[string]string{
	"es": {
		"nav.home":         "Inicio",
		"nav.products":     "Productos",
		"nav.admin":        "Administración",
		"nav.login":        "Iniciar sesión",
		"nav.logout":       "Cerrar sesión",
		"products.title":   "Nuestros productos",
		"products.empty":   "No hay productos disponibles",
		"products.loading": "Cargando productos...",
		"products.price":   "Precio",
		"cart.add":         "Añadir al carrito",
		"contact.send":     "Enviar",
		"contact.success":  "Mensaje enviado correctamente",
		"contact.error":    "No se pudo enviar el mensaje",
		"category.general": "General",
	},
	"en": {
		"nav.home":         "Home",
		"nav.products":     "Products",
		"nav.admin":        "Admin",
		"nav.login":        "Sign in",
		"nav.logout":       "Sign out",
		"products.title":   "Our products",
		"products.empty":   "No products available",
		"products.loading": "Loading products...",
		"products.price":   "Price",
		"cart.add":         "Add to cart",
		"contact.send":     "Send",
		"contact.success":  "Message sent",
		"contact.error":    "The message could not be sent",
		"category.general": "General",
	},
	"pt": {
		"nav.home":         "Início",
		"nav.products":     "Produtos",
		"nav.admin":        "Administração",
		"nav.login":        "Entrar",
		"nav.logout":       "Sair",
		"products.title":   "Nossos produtos",
		"products.empty":   "Nenhum produto disponível",
		"products.loading": "Carregando produtos...",
		"products.price":   "Preço",
		"cart.add":         "Adicionar ao carrinho",
		"contact.send":     "Enviar",
		"contact.success":  "Mensagem enviada com sucesso",
		"contact.error":    "Não foi possível enviar a mensagem",
		"category.general": "Geral",
	},
}

type translationService struct {
	matcher     language.Matcher
	defaultLang string
	catalogs    map[string]map[string]string
}

// NewTranslationService serves the built-in es, en and pt tables.
func NewTranslationService() TranslationService {
	return &translationService{
		matcher:     language.NewMatcher(supportedLanguages),
		defaultLang: baseCode(supportedLanguages[0]),
		catalogs:    catalogs,
	}
}

func (s *translationService) Translations(_ context.Context, preferences ...string) models.Translations {
	lang := s.match(preferences...)
	return models.Translations{
		Language: lang,
		Strings:  maps.Clone(s.catalogs[lang]),
	}
}

func (s *translationService) Translate(lang, key string) string {
	if v, ok := s.catalogs[s.match(lang)][key]; ok {
		return v
	}
	if v, ok := s.catalogs[s.defaultLang][key]; ok {
		return v
	}
	return key
}

// match returns the supported language code best matching preferences.
// Each preference may be a single tag or an Accept-Language value.
func (s *translationService) match(preferences ...string) string {
	var tags []language.Tag
	for _, p := range preferences {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return s.defaultLang
	}

	_, idx, conf := s.matcher.Match(tags...)
	if conf == language.No {
		return s.defaultLang
	}
	return baseCode(supportedLanguages[idx])
}

func baseCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
