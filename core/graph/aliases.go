package graph

import (
	"sort"

	"go.uber.org/zap"
)

// buildAliases maps every alternate spelling to its canonical unit name:
// plurals, abbreviations, representations like meter^2, and the explicit
// alias lists carried by authored and synthesized units. Canonical names
// always win over aliases. When two units claim the same alias, an
// authored unit outranks a synthesized one (mph belongs to mile/hour,
// not the expanded meter/hour); within a tier the first binding in
// sorted unit order wins. Either collision is reported as a warning.
func (b *Builder) buildAliases() {
	var authored, derived []string
	for name, info := range b.units {
		if info.Derived {
			derived = append(derived, name)
		} else {
			authored = append(authored, name)
		}
	}
	sort.Strings(authored)
	sort.Strings(derived)

	for _, name := range append(authored, derived...) {
		info := b.units[name]
		candidates := []string{info.Plural, info.Abbrev, info.Representation}
		candidates = append(candidates, info.Aliases...)
		for _, alias := range candidates {
			if alias == "" || alias == name {
				continue
			}
			if _, isCanonical := b.units[alias]; isCanonical {
				b.warn(Warning{
					Code:    WarnAliasCollision,
					Message: "alias " + alias + " of " + name + " shadows a canonical unit",
					From:    alias,
					To:      name,
				})
				continue
			}
			if bound, exists := b.aliases[alias]; exists {
				if bound != name {
					b.warn(Warning{
						Code:    WarnAliasCollision,
						Message: "alias " + alias + " already bound to " + bound + ", ignoring binding to " + name,
						From:    alias,
						To:      name,
					})
				}
				continue
			}
			b.aliases[alias] = name
		}
	}

	b.logger.Debug("aliases built", zap.Int("count", len(b.aliases)))
}
