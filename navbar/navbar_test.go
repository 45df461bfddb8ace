package navbar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/tailnav/navbar"
	"github.com/GoPowerDNS-Admin/tailnav/tag"
)

const (
	navOpen       = `<nav id="w0-navbar" class="bg-black relative flex flex-wrap items-center px-2 py-3 mb-3">` + "\n"
	containerOpen = `<div class="container px-4 mx-auto flex flex-wrap items-center justify-between">` + "\n"
	brandOpen     = `<div class="flex justify-between lg:justify-start lg:static lg:w-auto px-4 relative w-full">` + "\n"
	toggle        = `<button type="button" onclick="toggleNavbar(&apos;w0-items-navbar&apos;)">&#9776;</button>`
	itemsOpen     = `<div id="w0-items-navbar" class="lg:flex flex-grow items-center hidden">` + "\n" +
		`<ul class="flex flex-col lg:flex-row list-none lg:ml-auto">` + "\n"
	closing   = "</ul>\n</div>\n</div>\n</nav>"
	linkClass = `flex font-bold hover:opacity-75 items-center leading-snug px-3 py-2 text-white text-xs uppercase`
	brandText = `font-bold inline-block leading-relaxed px-4 text-sm text-white uppercase whitespace-nowrap`
)

// emptyBrand is the brand block without brand text or image.
const emptyBrand = brandOpen + toggle + "\n</div>\n"

// render runs Begin and End on the default scope after resetting its counter.
func render(t *testing.T, nb navbar.NavBar) string {
	t.Helper()

	head, err := nb.Begin()
	require.NoError(t, err)

	tail, err := navbar.End()
	require.NoError(t, err)

	return head + tail
}

func TestRender(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New()))
}

func TestRenderBrand(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen +
		"<span>Mi Proyecto</span>\n" +
		itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New().Brand("<span>Mi Proyecto</span>")))
}

func TestBackgroundColorTheme(t *testing.T) {
	navbar.Counter(0)

	expected := `<nav id="w0-navbar" class="bg-amber-500 bg-black relative flex flex-wrap items-center px-2 py-3 mb-3">` + "\n" +
		containerOpen + emptyBrand + itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New().BackgroundColorTheme(navbar.BgAmber)))
}

func TestBackgroundColorTheme_AllColors(t *testing.T) {
	tests := []struct {
		name  string
		class string
	}{
		{"amber", "bg-amber-500"},
		{"black", "bg-black"},
		{"emerald", "bg-emerald-500"},
		{"indigo", "bg-indigo-500"},
		{"lightBlue", "bg-lightBlue-500"},
		{"orange", "bg-orange-500"},
		{"pink", "bg-pink-500"},
		{"purple", "bg-purple-500"},
		{"red", "bg-red-500"},
		{"teal", "bg-teal-500"},
		{"white", "bg-white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := navbar.NewScope()

			// duplicate classes collapse, black is already part of the defaults
			classes := tt.class + " bg-black relative"
			if tt.class == "bg-black" {
				classes = "bg-black relative"
			}

			out, err := scope.New().BackgroundColorTheme(navbar.Color(tt.name)).Render()
			require.NoError(t, err)

			assert.Contains(t, out, `<nav id="w0-navbar" class="`+classes)

			byClass, err := scope.New().BackgroundColorTheme(navbar.Color(tt.class)).Render()
			require.NoError(t, err)
			assert.Contains(t, byClass, `<nav id="w1-navbar" class="`+classes)
		})
	}
}

func TestBackgroundColorThemeException(t *testing.T) {
	const message = `Invalid color. Valid values are: "bg-amber-500", "bg-black", "bg-emerald-500", "bg-indigo-500", ` +
		`"bg-lightBlue-500", "bg-orange-500", "bg-pink-500", "bg-purple-500", "bg-red-500", "bg-teal-500", ` +
		`"bg-white".`

	scope := navbar.NewScope()
	nb := scope.New().BackgroundColorTheme("noExist")

	require.Error(t, nb.Err())
	assert.EqualError(t, nb.Err(), message)

	out, err := nb.Begin()
	require.ErrorIs(t, err, navbar.ErrInvalidColor)
	assert.EqualError(t, err, message)
	assert.Empty(t, out)
	assert.Equal(t, 0, scope.Open())
	assert.Equal(t, 0, scope.Count())

	_, err = navbar.ParseColor("noExist")
	assert.EqualError(t, err, message)
}

func TestBackgroundColorThemeRecovers(t *testing.T) {
	nb := navbar.NewScope().New().BackgroundColorTheme("noExist")
	require.ErrorIs(t, nb.Err(), navbar.ErrInvalidColor)

	nb = nb.BackgroundColorTheme(navbar.BgRed)
	require.NoError(t, nb.Err())

	out, err := nb.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `class="bg-red-500 `)
}

func TestBrandImage(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<img class="w-6" src="tests.jpg" alt="">` + "\n" +
		toggle + "\n</div>\n" +
		itemsOpen + closing

	nb := navbar.New().
		BrandImage("tests.jpg").
		BrandImageAttributes(tag.Attributes{"class": "w-6"})

	assert.Equal(t, expected, render(t, nb))
}

func TestBrandImageText(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<img class="w-6" src="tests.jpg" alt="">` + "\n" +
		`<a class="` + brandText + `" href="/">Mi Proyecto</a>` + "\n" +
		toggle + "\n</div>\n" +
		itemsOpen + closing

	nb := navbar.New().
		BrandImage("tests.jpg").
		BrandImageAttributes(tag.Attributes{"class": "w-6"}).
		BrandText("Mi Proyecto")

	assert.Equal(t, expected, render(t, nb))
}

func TestBrandText(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<span class="testMe ` + brandText + `">Mi Proyecto</span>` + toggle + "\n</div>\n" +
		itemsOpen + closing

	nb := navbar.New().
		BrandText("Mi Proyecto").
		BrandTextAttributes(tag.Attributes{"class": "testMe"}).
		BrandLink("")

	assert.Equal(t, expected, render(t, nb))
}

func TestBrandTextLink(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<a class="` + brandText + `" href="/">Mi Proyecto</a>` + "\n" +
		toggle + "\n</div>\n" +
		itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New().BrandText("Mi Proyecto")))
}

func TestBrandTextEncoding(t *testing.T) {
	scope := navbar.NewScope()

	out, err := scope.New().BrandText("Tom & Jerry").Render()
	require.NoError(t, err)
	assert.Contains(t, out, `href="/">Tom &amp; Jerry</a>`)

	out, err = scope.New().BrandTextRaw("<b>Tom</b>").Render()
	require.NoError(t, err)
	assert.Contains(t, out, `href="/"><b>Tom</b></a>`)
}

func TestContainerAttributes(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen +
		`<div class="testMe container px-4 mx-auto flex flex-wrap items-center justify-between">` + "\n" +
		emptyBrand + itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New().ContainerAttributes(tag.Attributes{"class": "testMe"})))
}

func TestContainerItemsAttributes(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand +
		`<div id="w0-items-navbar" class="testMe lg:flex flex-grow items-center hidden">` + "\n" +
		`<ul class="flex flex-col lg:flex-row list-none lg:ml-auto">` + "\n" +
		closing

	assert.Equal(t, expected, render(t, navbar.New().ContainerItemsAttributes(tag.Attributes{"class": "testMe"})))
}

func TestItems(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="/about">About</a>` + "\n" +
		"</li>\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="/contact">Contact</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().Items([]navbar.Item{
		{Label: "About", URL: "/about"},
		{Label: "Contact", URL: "/contact"},
	})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemsEmpty(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#">Page1</a>` + "\n" +
		"</li>\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#">Page4</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().Items([]navbar.Item{
		{Label: "Page1", Items: nil},
		{Label: "Page4", Items: []navbar.Item{}},
	})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemsEncodeLabels(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#">a & b</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().Items([]navbar.Item{{Label: "a & b", Encode: navbar.Bool(false)}})
	assert.Equal(t, expected, render(t, nb))

	expected = `<nav id="w1-navbar" class="bg-black relative flex flex-wrap items-center px-2 py-3 mb-3">` + "\n" +
		containerOpen + brandOpen +
		`<button type="button" onclick="toggleNavbar(&apos;w1-items-navbar&apos;)">&#9776;</button>` + "\n" +
		"</div>\n" +
		`<div id="w1-items-navbar" class="lg:flex flex-grow items-center hidden">` + "\n" +
		`<ul class="flex flex-col lg:flex-row list-none lg:ml-auto">` + "\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#">a &amp; b</a>` + "\n" +
		"</li>\n" +
		closing

	nb = navbar.New().Items([]navbar.Item{{Label: "a & b", Encode: navbar.Bool(true)}})
	assert.Equal(t, expected, render(t, nb))
}

func TestItemsIcon(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<img src="yii-logo.jpg" alt="">` + "\n" +
		`<a class="` + brandText + `" href="/">My Project</a>` + "\n" +
		toggle + "\n</div>\n" +
		itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="/setting/account">` + "\n" +
		`<span><i class="fas fa-user-cog"></i></span><span>Setting Account</span>` + "\n" +
		"</a>\n" +
		"</li>\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="/profile">` + "\n" +
		`<span><i class="fas fa-users"></i></span><span>Profile</span>` + "\n" +
		"</a>\n" +
		"</li>\n" +
		closing

	nb := navbar.New().
		BrandImage("yii-logo.jpg").
		BrandText("My Project").
		Items([]navbar.Item{
			{
				Label:          "Setting Account",
				URL:            "/setting/account",
				Icon:           "fas fa-user-cog",
				IconAttributes: tag.Attributes{"class": "icon"},
			},
			{
				Label:          "Profile",
				URL:            "/profile",
				Icon:           "fas fa-users",
				IconAttributes: tag.Attributes{"class": "icon"},
			},
		})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemsIconAttributes(t *testing.T) {
	out, err := navbar.NewScope().New().Items([]navbar.Item{
		{Label: "Home", Icon: "fas fa-home", IconAttributes: tag.Attributes{"aria-hidden": "true"}},
	}).Render()
	require.NoError(t, err)

	assert.Contains(t, out, `<span><i class="fas fa-home" aria-hidden="true"></i></span><span>Home</span>`)
}

func TestItemsExplicitActive(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="is-active ` + linkClass + `" href="#">Item1</a>` + "\n" +
		"</li>\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="/site/index">Item2</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().
		WithoutActivateItems().
		CurrentPath("/site/index").
		Items([]navbar.Item{
			{Label: "Item1", Active: true},
			{Label: "Item2", URL: "/site/index"},
		})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemsImplicitActive(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="is-active ` + linkClass + `" href="#">Item1</a>` + "\n" +
		"</li>\n" +
		"<li class=\"nav-item\">\n" +
		`<a class="is-active ` + linkClass + `" href="/site/index">Item2</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().
		CurrentPath("/site/index").
		Items([]navbar.Item{
			{Label: "Item1", Active: true},
			{Label: "Item2", URL: "/site/index"},
		})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemsActiveRequiresExactPath(t *testing.T) {
	out, err := navbar.NewScope().New().
		CurrentPath("/site/index/").
		Items([]navbar.Item{{Label: "Item", URL: "/site/index"}}).
		Render()
	require.NoError(t, err)

	assert.NotContains(t, out, "is-active")
}

func TestItemsLabelException(t *testing.T) {
	scope := navbar.NewScope()

	_, err := scope.New().
		Items([]navbar.Item{
			{
				Items: []navbar.Item{
					{URL: "#"},
					navbar.Separator(),
					{Label: "Level 2", URL: "#", Visible: navbar.Bool(true)},
				},
			},
		}).
		Begin()

	require.ErrorIs(t, err, navbar.ErrLabelRequired)
	assert.EqualError(t, err, `The "label" option is required.`)
	assert.Equal(t, 0, scope.Open())
}

func TestItemsNestedLabelException(t *testing.T) {
	_, err := navbar.NewScope().New().
		Items([]navbar.Item{
			{
				Label: "Level 1",
				Items: []navbar.Item{
					{Label: "Level 2", Items: []navbar.Item{{URL: "/deep"}}},
				},
			},
		}).
		Begin()

	require.ErrorIs(t, err, navbar.ErrLabelRequired)
}

func TestItemsTopLevelSeparator(t *testing.T) {
	_, err := navbar.NewScope().New().
		Items([]navbar.Item{{Label: "Home"}, navbar.Separator()}).
		Begin()

	require.ErrorIs(t, err, navbar.ErrSeparatorNotAllowed)
}

func TestItemLinkDisabled(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#" style="opacity:.75; pointer-events:none;">Link disable</a>` + "\n" +
		"</li>\n" +
		closing

	nb := navbar.New().Items([]navbar.Item{{Label: "Link disable", URL: "#", Disabled: true}})

	assert.Equal(t, expected, render(t, nb))
}

func TestItemLinkDisabledKeepsStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{name: "trailing semicolon", style: "color:red;"},
		{name: "without trailing semicolon", style: "color:red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := navbar.NewScope().New().
				Items([]navbar.Item{{
					Label:          "Link",
					Disabled:       true,
					LinkAttributes: tag.Attributes{"style": tt.style},
				}}).
				Render()
			require.NoError(t, err)

			assert.Contains(t, out, `style="color:red; opacity:.75; pointer-events:none;"`)
		})
	}
}

func TestItemsWithoutURL(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + emptyBrand + itemsOpen +
		"<li class=\"nav-item\">\n" +
		`<a class="` + linkClass + `" href="#">Page1</a>` + "\n" +
		"</li>\n" +
		closing

	assert.Equal(t, expected, render(t, navbar.New().Items([]navbar.Item{{Label: "Page1"}})))
}

func TestItemsHidden(t *testing.T) {
	out, err := navbar.NewScope().New().
		Items([]navbar.Item{
			{Label: "Shown"},
			{Label: "Hidden", Visible: navbar.Bool(false)},
		}).
		Render()
	require.NoError(t, err)

	assert.Contains(t, out, ">Shown</a>")
	assert.NotContains(t, out, "Hidden")
}

func TestItemsNested(t *testing.T) {
	scope := navbar.NewScope()

	out, err := scope.New().
		WithoutLoadDefaultTheme().
		CurrentPath("/b/2").
		Items([]navbar.Item{
			{Label: "A", URL: "/a"},
			{
				Label: "B",
				Items: []navbar.Item{
					{Label: "B1", URL: "/b/1"},
					navbar.Separator(),
					{
						Label: "B2",
						URL:   "/b/2",
						Items: []navbar.Item{{Label: "B2a", URL: "/b/2/a"}},
					},
				},
			},
		}).
		Render()
	require.NoError(t, err)

	expected := "<nav id=\"w0-navbar\">\n<div>\n<div>\n" +
		`<button type="button" onclick="toggleNavbar(&apos;w0-items-navbar&apos;)">&#9776;</button>` + "\n" +
		"</div>\n<div id=\"w0-items-navbar\">\n<ul>\n" +
		"<li>\n<a href=\"/a\">A</a>\n</li>\n" +
		"<li>\n<a href=\"#\">B</a>\n<ul>\n" +
		"<li>\n<a href=\"/b/1\">B1</a>\n</li>\n" +
		"<li role=\"separator\"></li>\n" +
		"<li>\n<a class=\"is-active\" href=\"/b/2\">B2</a>\n<ul>\n" +
		"<li>\n<a href=\"/b/2/a\">B2a</a>\n</li>\n" +
		"</ul>\n</li>\n" +
		"</ul>\n</li>\n" +
		closing

	assert.Equal(t, expected, out)
}

func TestItemsNestedThemed(t *testing.T) {
	out, err := navbar.NewScope().New().
		Items([]navbar.Item{
			{Label: "B", Items: []navbar.Item{{Label: "B1"}, navbar.Separator()}},
		}).
		Render()
	require.NoError(t, err)

	assert.Contains(t, out, `<ul class="flex flex-col list-none pl-4">`)
	assert.Contains(t, out, `<li class="border-t border-white opacity-25 my-1" role="separator"></li>`)
}

func TestToggleAttributes(t *testing.T) {
	navbar.Counter(0)

	expected := navOpen + containerOpen + brandOpen +
		`<button type="button" class="testMe" onclick="toggleNavbar(&apos;w0-items-navbar&apos;)">&#9776;</button>` + "\n" +
		"</div>\n" +
		itemsOpen + closing

	assert.Equal(t, expected, render(t, navbar.New().ToggleAttributes(tag.Attributes{"class": "testMe"})))
}

func TestWithoutDefaults(t *testing.T) {
	navbar.Counter(0)

	expected := "<nav id=\"w0-navbar\">\n" +
		"<div>\n" +
		"<div>\n" +
		toggle + "\n" +
		"</div>\n" +
		"<div id=\"w0-items-navbar\">\n" +
		"<ul>\n" +
		closing

	out := render(t, navbar.New().WithoutLoadDefaultTheme().Items([]navbar.Item{}))
	assert.Equal(t, expected, out)
	assert.NotContains(t, out, "class=")
}

func TestExplicitID(t *testing.T) {
	scope := navbar.NewScope()

	out, err := scope.New().ID("main").Render()
	require.NoError(t, err)

	assert.Contains(t, out, `<nav id="main-navbar"`)
	assert.Contains(t, out, `toggleNavbar(&apos;main-items-navbar&apos;)`)
	assert.Contains(t, out, `<div id="main-items-navbar"`)
	assert.Equal(t, 0, scope.Count(), "explicit id must not consume the counter")
}

func TestNavAttributes(t *testing.T) {
	out, err := navbar.NewScope().New().
		Attributes(tag.Attributes{"class": "shadow", "aria-label": "Main"}).
		Render()
	require.NoError(t, err)

	assert.Contains(t, out, `<nav id="w0-navbar" class="shadow bg-black relative flex flex-wrap items-center px-2 py-3 mb-3" aria-label="Main">`)
}
