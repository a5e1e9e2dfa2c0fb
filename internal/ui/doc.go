// Package ui contains the Bubble Tea program that hosts the command menu
// overlay. The Model type focuses on message orchestration while the
// navigation rules themselves live in internal/nav.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are mapped by the KeyMap to at most one nav.Event and applied
//     to the open nav.Session. Pointer motion becomes Hover, a left click
//     becomes Select.
//   - Confirming a leaf entry dispatches its action through the command bus
//     (internal/ui/command). Links resolve to a menu.ActionResult carrying the
//     href, after which the program quits so the caller can report it.
//
// State ownership:
//   - The nav.Session owns the visible list, the active entry and the history
//     of replaced lists. The model only keeps presentation state: dimensions,
//     theme, status messages and the scroll offset (internal/ui/state).
//   - Opening the overlay always starts a fresh session at the root list;
//     closing it discards the session.
//
// Backend interactions:
//   - An optional backend.Watcher streams reloaded menu definitions; Update
//     waits for those events and swaps the root list in place.
package ui
