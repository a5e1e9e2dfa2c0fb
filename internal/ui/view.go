package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/command-menu/internal/menu"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	// suffix is pre-rendered and right-aligned after text
	suffix string
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.IsOpen() {
		return m.closedView()
	}
	lines, _ := m.layout()
	body := renderLines(lines)
	if m.styles.Frame != nil {
		return m.styles.Frame.Render(body)
	}
	return body
}

func (m *Model) closedView() string {
	lines := []styledLine{{
		text:  fmt.Sprintf("Press %s to open the command menu, %s to quit.", m.keys.Open.Help().Key, m.keys.Quit.Help().Key),
		style: m.styles.Footer,
	}}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: m.styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: m.styles.Error})
	}
	return renderLines(applyWidth(lines, m.width))
}

// layout builds the overlay body. ids holds, per line, the ID of the item
// rendered on it so pointer events can be mapped back to entries.
func (m *Model) layout() ([]styledLine, []string) {
	width := m.innerWidth()
	lines := make([]styledLine, 0, 16)
	ids := make([]string, 0, 16)
	add := func(line styledLine, id string) {
		lines = append(lines, line)
		ids = append(ids, id)
	}

	add(styledLine{text: m.menuHeader(), style: m.styles.Breadcrumb}, "")

	state := m.session.State()
	visible := state.Visible
	maxRows := m.maxVisibleRows()
	cursor := visible.IndexOf(state.Active)
	if cursor < 0 {
		cursor = 0
	}
	m.viewport.EnsureVisible(cursor, len(visible), maxRows)
	start, end := m.viewport.Window(len(visible), maxRows)
	if len(visible) == 0 {
		add(styledLine{text: "(no entries)", style: m.styles.Empty}, "")
	}
	for _, entry := range visible[start:end] {
		if entry.Kind == menu.KindTitle {
			add(styledLine{text: entry.Label, style: m.styles.Title}, "")
			continue
		}
		add(m.buildItemLine(entry, entry.ID == state.Active, width), entry.ID)
	}

	if info := m.statusText(); info != "" {
		add(styledLine{}, "")
		add(styledLine{text: info, style: m.styles.Info}, "")
	}
	if m.errMsg != "" {
		add(styledLine{text: "Error: " + m.errMsg, style: m.styles.Error}, "")
	}
	if m.showFooter {
		m.help.Width = width
		add(styledLine{}, "")
		add(styledLine{text: m.help.View(m.keys), style: m.styles.Footer}, "")
	}
	return applyWidth(lines, width), ids
}

func (m *Model) buildItemLine(entry menu.Entry, active bool, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if active {
		lineStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.SelectedItemIndicator
	}
	label := entry.Label
	if entry.Icon != "" {
		label = entry.Icon + " " + label
	}
	if entry.HasChildren() {
		label += " ›"
	}
	text := indicator + " " + label
	suffix := m.keystrokes(entry.Shortcut)
	if width > 0 {
		if pad := width - len([]rune(text)) - lipgloss.Width(suffix); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
		suffix:        suffix,
	}
}

// keystrokes renders one badge per shortcut key.
func (m *Model) keystrokes(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	badges := make([]string, len(keys))
	for i, k := range keys {
		if m.styles.Keystroke != nil {
			badges[i] = m.styles.Keystroke.Render(k)
		} else {
			badges[i] = "[" + k + "]"
		}
	}
	return " " + strings.Join(badges, " ")
}

// entryAt resolves a screen row to the item drawn on it. inside reports
// whether the row falls within the overlay at all.
func (m *Model) entryAt(y int) (id string, inside bool) {
	lines, ids := m.layout()
	top := 0
	height := len(lines)
	if m.styles.Frame != nil {
		top = m.styles.Frame.GetBorderTopSize() + m.styles.Frame.GetPaddingTop()
		height += m.styles.Frame.GetVerticalFrameSize()
	}
	if y < 0 || y >= height {
		return "", false
	}
	row := y - top
	if row < 0 || row >= len(ids) {
		return "", true
	}
	return ids[row], true
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return defaultRootTitle
	}
	return strings.Join(segments, menuHeaderSeparator)
}

// headerSegments lists the labels of the entries drilled into, outermost first.
func (m *Model) headerSegments() []string {
	if m.session == nil {
		return nil
	}
	history := m.session.State().History
	segments := make([]string, 0, len(history))
	for _, frame := range history {
		if entry, ok := frame.Visible.Find(frame.Opened); ok {
			segments = append(segments, entry.Label)
		}
	}
	return segments
}

func (m *Model) statusText() string {
	if m.loading && m.pendingLabel != "" {
		return fmt.Sprintf("Running %s…", m.pendingLabel)
	}
	return m.currentInfo()
}

func (m *Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width
	if m.styles.Frame != nil {
		w -= m.styles.Frame.GetHorizontalFrameSize()
	}
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) innerHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height
	if m.styles.Frame != nil {
		h -= m.styles.Frame.GetVerticalFrameSize()
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) maxVisibleRows() int {
	height := m.innerHeight()
	if height <= 0 {
		return -1
	}
	used := 1 // breadcrumb
	if m.statusText() != "" {
		used += 2
	}
	if m.errMsg != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	remain := height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		suffix := line.suffix
		room := width - lipgloss.Width(suffix)
		if room < 1 {
			suffix = ""
			room = width
		}
		result[i] = styledLine{
			text:          truncateText(line.text, room),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			suffix:        suffix,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text + line.suffix
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
