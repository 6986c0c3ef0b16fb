package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/pagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aboutURL         = "https://www.nhs.uk/medicines/aspirin/about-aspirin/"
	limitationsURL   = "https://www.nhs.uk/medicines/aspirin/who-can-and-cannot-take-aspirin/"
	instructionsURL  = "https://www.nhs.uk/medicines/aspirin/how-and-when-to-take-aspirin/"
	sideEffectsURL   = "https://www.nhs.uk/medicines/aspirin/side-effects-of-aspirin/"
	breastfeedingURL = "https://www.nhs.uk/medicines/aspirin/pregnancy-breastfeeding-and-fertility/"
	emptyURL         = "https://www.nhs.uk/medicines/aspirin/empty/"
)

const aboutPage = `<html><body><main>
<section>
  <h2>About aspirin</h2>
  <p>Aspirin is a   painkiller.</p>
  <p>It is also used to thin the blood.</p>
  <ul><li>headaches</li><li>toothache</li></ul>
</section>
<section>
  <h2>Key facts</h2>
  <ul><li>Take it with food.</li><li>Do not give it to children.</li></ul>
</section>
</main></body></html>`

const aboutPageNoFacts = `<html><body><main>
<section><p>Aspirin is a painkiller.</p><ul><li>headaches</li></ul></section>
</main></body></html>`

const limitationsPage = `<html><body><main>
<section>
  <h2>Who can take aspirin</h2>
  <p>Adults can take aspirin.</p>
  <ul><li>people with ulcers</li><li>children under 16</li></ul>
</section>
<section><p>Ignored</p></section>
</main></body></html>`

const instructionsPage = `<html><body><main>
<section><h2>Dosage</h2><p>Take 1 tablet.</p></section>
<section><h2>How to take it</h2><h2>If you forget</h2><p>Swallow whole.</p><p>Do not double up.</p></section>
</main></body></html>`

const sideEffectsPage = `<html><body><main>
<section>
  <h2>Common side effects</h2>
  <p>These happen to more than 1 in 100 people.</p>
  <div class="nhsuk-card"><div class="nhsuk-card__content">
    <ul><li>indigestion</li><li>bleeding more easily</li></ul>
    <p>Call 111 if these bother you.</p>
  </div></div>
</section>
<section>
  <h2>Serious side effects</h2>
  <p>These are rare.</p>
  <div class="nhsuk-card"><div class="nhsuk-card__content">
    <p>Call 999 now if:</p>
    <ul><li>you cough up blood</li></ul>
  </div></div>
</section>
</main></body></html>`

const breastfeedingPage = `<html><body><main>
<section>
  <h2>Aspirin and pregnancy</h2>
  <p>Low-dose aspirin may be prescribed.</p>
  <div class="nhsuk-card"><div class="nhsuk-card__content">
    <ul><li>Talk to your doctor.</li></ul>
    <p>Card paragraph is not collected.</p>
  </div></div>
</section>
</main></body></html>`

const emptyPage = `<html><body><main><div>Nothing here</div></main></body></html>`

func newPage() *pagetest.Page {
	return pagetest.New(map[string]string{
		aboutURL:         aboutPage,
		limitationsURL:   limitationsPage,
		instructionsURL:  instructionsPage,
		sideEffectsURL:   sideEffectsPage,
		breastfeedingURL: breastfeedingPage,
		emptyURL:         emptyPage,
	})
}

func ref(url string) core.Ref {
	return core.Ref{Link: "/link/for/test/", URL: url}
}

func TestAbout(t *testing.T) {
	page := newPage()
	got, err := About(context.Background(), page, ref(aboutURL))
	require.NoError(t, err)

	assert.Equal(t, core.AboutSection{
		Link: "/link/for/test/",
		AboutData: core.AboutData{
			Paragraphs: []string{"Aspirin is a   painkiller.", "It is also used to thin the blood."},
			ListItems:  []string{"headaches", "toothache"},
		},
		KeyFacts: []string{"Take it with food.", "Do not give it to children."},
	}, got)
	assert.Equal(t, []string{aboutURL}, page.Visits)
}

func TestAboutMissingSecondSection(t *testing.T) {
	page := pagetest.New(map[string]string{aboutURL: aboutPageNoFacts})
	got, err := About(context.Background(), page, ref(aboutURL))
	require.NoError(t, err)

	about := got.(core.AboutSection)
	assert.NotNil(t, about.KeyFacts)
	assert.Empty(t, about.KeyFacts)
	assert.Equal(t, []string{"Aspirin is a painkiller."}, about.AboutData.Paragraphs)
	assert.Equal(t, []string{"headaches"}, about.AboutData.ListItems)
}

func TestAboutNoSections(t *testing.T) {
	page := newPage()
	got, err := About(context.Background(), page, ref(emptyURL))
	require.NoError(t, err)

	about := got.(core.AboutSection)
	assert.Equal(t, []string{}, about.AboutData.Paragraphs)
	assert.Equal(t, []string{}, about.AboutData.ListItems)
	assert.Equal(t, []string{}, about.KeyFacts)
}

func TestLimitations(t *testing.T) {
	page := newPage()
	got, err := Limitations(context.Background(), page, ref(limitationsURL))
	require.NoError(t, err)

	assert.Equal(t, core.LimitationsSection{
		Link: "/link/for/test/",
		LimitationsData: []string{
			"Who can take aspirin",
			"",
			"Adults can take aspirin.",
			"",
			"people with ulcers",
			"children under 16",
		},
	}, got)
}

func TestLimitationsWithoutSection(t *testing.T) {
	page := newPage()
	got, err := Limitations(context.Background(), page, ref(emptyURL))
	require.NoError(t, err)

	lim := got.(core.LimitationsSection)
	assert.Nil(t, lim.LimitationsData)
}

func TestInstructionsOverwrite(t *testing.T) {
	page := newPage()
	got, err := InstructionsFunc(MergeOverwrite)(context.Background(), page, ref(instructionsURL))
	require.NoError(t, err)

	assert.Equal(t, core.InstructionsSection{
		Link:          "/link/for/test/",
		ParagraphData: []string{"Swallow whole.", "Do not double up."},
		HeaderData:    []string{"How to take it", "If you forget"},
	}, got)
}

func TestInstructionsOverwriteWithoutSecondSection(t *testing.T) {
	page := pagetest.New(map[string]string{
		instructionsURL: `<section><h2>Dosage</h2><p>Take 1 tablet.</p></section>`,
	})
	got, err := InstructionsFunc(MergeOverwrite)(context.Background(), page, ref(instructionsURL))
	require.NoError(t, err)

	// Section 2 always sets both fields, so an absent section 2 wipes section 1.
	inst := got.(core.InstructionsSection)
	assert.Equal(t, []string{}, inst.ParagraphData)
	assert.Equal(t, []string{}, inst.HeaderData)
}

func TestInstructionsConcat(t *testing.T) {
	page := newPage()
	got, err := InstructionsFunc(MergeConcat)(context.Background(), page, ref(instructionsURL))
	require.NoError(t, err)

	inst := got.(core.InstructionsSection)
	assert.Equal(t, []string{"Take 1 tablet.", "Swallow whole.", "Do not double up."}, inst.ParagraphData)
	assert.Equal(t, []string{"Dosage", "How to take it", "If you forget"}, inst.HeaderData)
}

func TestSideEffectsOverwrite(t *testing.T) {
	page := newPage()
	got, err := SideEffectsFunc(MergeOverwrite)(context.Background(), page, ref(sideEffectsURL))
	require.NoError(t, err)

	assert.Equal(t, core.SideEffectsSection{
		Link:           "/link/for/test/",
		ParagraphData:  []string{"These are rare.", "Call 999 now if:"},
		HeaderData:     []string{"Serious side effects"},
		DivContentData: []string{"you cough up blood", "Call 999 now if:"},
	}, got)
}

func TestSideEffectsConcat(t *testing.T) {
	page := newPage()
	got, err := SideEffectsFunc(MergeConcat)(context.Background(), page, ref(sideEffectsURL))
	require.NoError(t, err)

	se := got.(core.SideEffectsSection)
	assert.Equal(t, []string{
		"indigestion",
		"bleeding more easily",
		"Call 111 if these bother you.",
		"you cough up blood",
		"Call 999 now if:",
	}, se.DivContentData)
	assert.Equal(t, []string{"Common side effects", "Serious side effects"}, se.HeaderData)
}

func TestBreastfeeding(t *testing.T) {
	page := newPage()
	got, err := Breastfeeding(context.Background(), page, ref(breastfeedingURL))
	require.NoError(t, err)

	assert.Equal(t, core.BreastfeedingSection{
		Link:           "/link/for/test/",
		ParagraphData:  []string{"Low-dose aspirin may be prescribed.", "Card paragraph is not collected."},
		HeaderData:     []string{"Aspirin and pregnancy"},
		DivContentData: []string{"Talk to your doctor."},
	}, got)
}

func TestLoadSkipsNavigationWhenAlreadyThere(t *testing.T) {
	page := newPage()
	require.NoError(t, page.Navigate(context.Background(), sideEffectsURL))

	_, err := SideEffectsFunc(MergeOverwrite)(context.Background(), page, ref(sideEffectsURL))
	require.NoError(t, err)
	assert.Equal(t, 1, page.VisitCount(sideEffectsURL))
}

func TestNavigationErrorPropagates(t *testing.T) {
	page := newPage()
	boom := errors.New("net::ERR_CONNECTION_RESET")
	page.Errors[aboutURL] = boom

	d := New(MergeOverwrite)
	_, err := d.Extract(context.Background(), page, core.About, ref(aboutURL))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "extracting About")
}

func TestDispatcher(t *testing.T) {
	d := New(MergeOverwrite)

	for _, c := range []core.Category{core.About, core.Limitations, core.Instructions, core.SideEffects, core.PregnancyBreastfeeding} {
		assert.True(t, d.Implemented(c), c.String())
	}
	for _, c := range []core.Category{core.OtherMedicines, core.CommonQuestions} {
		assert.False(t, d.Implemented(c), c.String())
	}

	page := newPage()
	got, err := d.Extract(context.Background(), page, core.Instructions, ref(instructionsURL))
	require.NoError(t, err)
	assert.IsType(t, core.InstructionsSection{}, got)
}

func TestDispatcherUnimplementedDoesNotNavigate(t *testing.T) {
	d := New(MergeOverwrite)
	page := newPage()

	got, err := d.Extract(context.Background(), page, core.CommonQuestions, core.Ref{
		Link: "/medicines/aspirin/common-questions-about-aspirin/",
		URL:  "https://www.nhs.uk/medicines/aspirin/common-questions-about-aspirin/",
	})
	require.NoError(t, err)
	assert.Equal(t, core.UnimplementedSection{
		Kind: core.CommonQuestions,
		Link: "/medicines/aspirin/common-questions-about-aspirin/",
	}, got)
	assert.Empty(t, page.Visits)
}

func TestParseMergeMode(t *testing.T) {
	m, err := ParseMergeMode("")
	require.NoError(t, err)
	assert.Equal(t, MergeOverwrite, m)

	m, err = ParseMergeMode(" Concat ")
	require.NoError(t, err)
	assert.Equal(t, MergeConcat, m)
	assert.Equal(t, "concat", m.String())

	_, err = ParseMergeMode("append")
	assert.Error(t, err)
}
