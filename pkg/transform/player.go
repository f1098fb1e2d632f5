package transform

import (
	"fmt"

	"github.com/brdgme/markup/pkg/ast"
	"github.com/brdgme/markup/pkg/color"
)

// PlayerBullet is prefixed to every rendered player name.
const PlayerBullet = "• "

// Player renders player p as their name in bold and their palette colour.
// An index outside players renders as "Player p".
func Player(p int, players []string) []ast.Node {
	return []ast.Node{ast.Bold{Children: []ast.Node{
		ast.Fg{Color: color.PlayerColor(p), Children: []ast.Node{
			ast.Text{Text: PlayerBullet + PlayerName(p, players)},
		}},
	}}}
}

// PlayerName returns the roster name for p, or a "Player p" placeholder.
func PlayerName(p int, players []string) string {
	if p >= 0 && p < len(players) {
		return players[p]
	}
	return fmt.Sprintf("Player %d", p)
}
