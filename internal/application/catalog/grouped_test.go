package catalog

import (
	"context"
	"testing"

	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"github.com/stretchr/testify/require"
)

var groupNames = []string{
	"Men Fragrance",
	"Women Fragrance",
	"Unisex Fragrance",
	"Eau de Toilette (EDT)",
	"Eau de Parfum (EDP)",
}

func namesOf(perfumes []*domain.Perfume) []string {
	names := make([]string, 0, len(perfumes))
	for _, p := range perfumes {
		names = append(names, p.Name)
	}
	return names
}

func TestGroupedEmptyCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	groups, err := svc.Grouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, len(groupNames))

	for _, name := range groupNames {
		sec := groups[name]
		require.NotNil(t, sec, "section %q must exist even with no products", name)
		require.NotNil(t, sec.Popular, "sub-slices serialize as [] rather than null")
		require.Empty(t, sec.Popular)
		require.Empty(t, sec.NewArrivals)
		require.Empty(t, sec.AllProducts)
	}
}

func TestGroupedPartition(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	seed := []*domain.Perfume{
		{Name: "Men EDT Popular", Price: 10, Gender: domain.GenderMen, Concentration: domain.ConcentrationEDT, IsPopular: true},
		{Name: "Women EDP New", Price: 10, Gender: domain.GenderWomen, Concentration: domain.ConcentrationEDP, IsNewArrival: true},
		{Name: "Unisex Parfum", Price: 10, Gender: domain.GenderUnisex, Concentration: domain.ConcentrationParfum},
		{Name: "Men Cologne Both", Price: 10, Gender: domain.GenderMen, Concentration: domain.ConcentrationCologne, IsPopular: true, IsNewArrival: true},
	}
	require.NoError(t, repo.InsertMany(ctx, seed))

	groups, err := svc.Grouped(ctx)
	require.NoError(t, err)

	men := groups["Men Fragrance"]
	require.ElementsMatch(t, []string{"Men EDT Popular", "Men Cologne Both"}, namesOf(men.AllProducts))
	require.ElementsMatch(t, []string{"Men EDT Popular", "Men Cologne Both"}, namesOf(men.Popular))
	require.ElementsMatch(t, []string{"Men Cologne Both"}, namesOf(men.NewArrivals))

	edt := groups["Eau de Toilette (EDT)"]
	require.ElementsMatch(t, []string{"Men EDT Popular"}, namesOf(edt.AllProducts),
		"gender sections and concentration sections overlap")

	edp := groups["Eau de Parfum (EDP)"]
	require.ElementsMatch(t, []string{"Women EDP New"}, namesOf(edp.AllProducts))
	require.ElementsMatch(t, []string{"Women EDP New"}, namesOf(edp.NewArrivals))
	require.Empty(t, edp.Popular)

	unisex := groups["Unisex Fragrance"]
	require.ElementsMatch(t, []string{"Unisex Parfum"}, namesOf(unisex.AllProducts),
		"non-EDT/EDP concentrations appear only under their gender section")
	require.Empty(t, unisex.Popular)
	require.Empty(t, unisex.NewArrivals)
}

func TestGroupedSubsetInvariant(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	genders := []domain.Gender{domain.GenderMen, domain.GenderWomen, domain.GenderUnisex}
	concentrations := []domain.Concentration{domain.ConcentrationEDT, domain.ConcentrationEDP, domain.ConcentrationParfum}
	i := 0
	for _, g := range genders {
		for _, c := range concentrations {
			require.NoError(t, repo.Insert(ctx, &domain.Perfume{
				Name: string(g) + "/" + string(c), Price: 1,
				Gender: g, Concentration: c,
				IsPopular:    i%2 == 0,
				IsNewArrival: i%3 == 0,
			}))
			i++
		}
	}

	groups, err := svc.Grouped(ctx)
	require.NoError(t, err)

	for name, sec := range groups {
		all := namesOf(sec.AllProducts)
		require.Subset(t, all, namesOf(sec.Popular), "%s: Popular must be a subset of All Products", name)
		require.Subset(t, all, namesOf(sec.NewArrivals), "%s: New Arrivals must be a subset of All Products", name)
		for _, p := range sec.Popular {
			require.True(t, p.IsPopular)
		}
		for _, p := range sec.NewArrivals {
			require.True(t, p.IsNewArrival)
		}
	}
}
